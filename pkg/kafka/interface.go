package kafka

// IProducer publishes messages to a single topic.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(key, value []byte, headers ...Header) error
	Close() error
	HealthCheck() error
}

// NewProducer creates a synchronous producer for cfg.Topic.
func NewProducer(cfg Config) (IProducer, error) {
	if err := validateProducerConfig(cfg); err != nil {
		return nil, err
	}
	return newProducerImpl(cfg)
}
