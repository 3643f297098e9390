package models

import "errors"

// ErrInvalidValue is wrapped by every Parse* function on bad input
var ErrInvalidValue = errors.New("invalid value")
