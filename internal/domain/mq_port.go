package domain

type Message struct {
	Key   []byte
	Value []byte
}

// PublisherPort streams lifecycle events to the internal message bus for
// downstream consumers (analytics, reconciliation). Distinct from webhook
// delivery, which goes to merchant-owned endpoints.
type PublisherPort interface {
	Publish(topic string, msgs ...Message) error
}
