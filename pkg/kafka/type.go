package kafka

import "github.com/IBM/sarama"

// Config holds configuration for Kafka producer.
type Config struct {
	Brokers  []string
	Topic    string
	ClientID string
}

// Header is a message header.
type Header struct {
	Key   string
	Value string
}

// producerImpl implements IProducer. The client is kept for health checks.
type producerImpl struct {
	client   sarama.Client
	producer sarama.SyncProducer
	topic    string
}
