package events

// Publish sends sig through p, skipping silently when p is nil
// (e.g., in tests or one-shot CLI commands without listeners).
func Publish(p Publisher, sig Signal) {
	if p == nil {
		return
	}
	p.Publish(sig)
}

// DataChanged is a convenience constructor for SignalDataChanged
func DataChanged(projectID string) Signal {
	return Signal{Name: SignalDataChanged, ProjectID: projectID}
}
