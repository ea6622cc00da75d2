package kafka

import (
	"fmt"
	"sync"

	"conversation-srv/config"
	"conversation-srv/pkg/kafka"
)

var (
	producer kafka.IProducer
	mu       sync.RWMutex
)

// ConnectProducer opens the producer publishing conversation events.
// Returns the existing producer if already connected.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	mu.Lock()
	defer mu.Unlock()

	if producer != nil {
		return producer, nil
	}

	p, err := kafka.NewProducer(kafka.Config{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		ClientID: cfg.ClientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}

	producer = p
	return producer, nil
}

// ProducerHealthCheck reports whether the producer still reaches a broker.
func ProducerHealthCheck() error {
	mu.RLock()
	defer mu.RUnlock()

	if producer == nil {
		return fmt.Errorf("Kafka producer not initialized")
	}
	return producer.HealthCheck()
}

// DisconnectProducer flushes and closes the producer and resets the singleton.
func DisconnectProducer() error {
	mu.Lock()
	defer mu.Unlock()

	if producer == nil {
		return nil
	}
	err := producer.Close()
	producer = nil
	if err != nil {
		return fmt.Errorf("failed to close Kafka producer: %w", err)
	}
	return nil
}
