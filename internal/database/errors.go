package database

import "errors"

// ErrNotFound is returned when a lookup by id matches no row.
// Services map it onto their own domain errors.
var ErrNotFound = errors.New("record not found")
