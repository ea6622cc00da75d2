package kafka

import (
	"errors"
	"fmt"

	"github.com/IBM/sarama"
)

var (
	errNoBrokers = errors.New("kafka: at least one broker is required")
	errNoTopic   = errors.New("kafka: topic is required")
)

func validateProducerConfig(cfg Config) error {
	if len(cfg.Brokers) == 0 {
		return errNoBrokers
	}
	if cfg.Topic == "" {
		return errNoTopic
	}
	return nil
}

func newSaramaConfig(cfg Config) *sarama.Config {
	sc := sarama.NewConfig()
	sc.ClientID = cfg.ClientID
	if sc.ClientID == "" {
		sc.ClientID = DefaultClientID
	}
	sc.Version = KafkaVersion
	sc.Producer.RequiredAcks = sarama.WaitForLocal
	sc.Producer.Compression = sarama.CompressionSnappy
	sc.Producer.Partitioner = sarama.NewHashPartitioner
	sc.Producer.Return.Successes = true
	sc.Producer.Retry.Max = ProducerRetryMax
	sc.Producer.Retry.Backoff = ProducerRetryBackoff
	sc.Producer.Timeout = ProducerTimeout
	return sc
}

func newProducerImpl(cfg Config) (*producerImpl, error) {
	client, err := sarama.NewClient(cfg.Brokers, newSaramaConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka client: %w", err)
	}

	producer, err := sarama.NewSyncProducerFromClient(client)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return &producerImpl{client: client, producer: producer, topic: cfg.Topic}, nil
}

// Publish sends one message to the configured topic. Messages with the same
// key land on the same partition.
func (p *producerImpl) Publish(key, value []byte, headers ...Header) error {
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	}
	for _, h := range headers {
		msg.Headers = append(msg.Headers, sarama.RecordHeader{Key: []byte(h.Key), Value: []byte(h.Value)})
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to publish message to %s: %w", p.topic, err)
	}
	return nil
}

// Close flushes the producer and closes the client, which the producer does
// not own.
func (p *producerImpl) Close() error {
	var err error
	if p.producer != nil {
		err = p.producer.Close()
	}
	if p.client != nil && !p.client.Closed() {
		if cerr := p.client.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// HealthCheck reports an error when the client is closed or knows no broker.
func (p *producerImpl) HealthCheck() error {
	if p.producer == nil || p.client == nil {
		return fmt.Errorf("producer is not initialized")
	}
	if p.client.Closed() {
		return fmt.Errorf("producer client is closed")
	}
	if len(p.client.Brokers()) == 0 {
		return fmt.Errorf("producer has no reachable broker")
	}
	return nil
}
