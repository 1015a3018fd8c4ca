package event

// Publisher ships domain events to the broker under a routing key.
type Publisher interface {
	Publish(routingKey string, msg any) error
}

// Notifier pushes a human-readable alert to the ops channel.
type Notifier interface {
	Notify(level, title, text string)
}
