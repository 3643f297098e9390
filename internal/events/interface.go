package events

// Publisher is the write side of the bus, the only part services need
type Publisher interface {
	Publish(sig Signal) int
}

// Subscriber is the read side of the bus
type Subscriber interface {
	Subscribe(name string, h Handler) (unsubscribe func())
}

// Notifier combines both sides
type Notifier interface {
	Publisher
	Subscriber
}

// Compile-time verification that *Bus implements Notifier
var _ Notifier = (*Bus)(nil)
