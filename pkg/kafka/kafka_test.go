package kafka

import (
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
)

func TestValidateProducerConfig(t *testing.T) {
	assert.ErrorIs(t, validateProducerConfig(Config{Topic: "t"}), errNoBrokers)
	assert.ErrorIs(t, validateProducerConfig(Config{Brokers: []string{"localhost:9092"}}), errNoTopic)
	assert.NoError(t, validateProducerConfig(Config{Brokers: []string{"localhost:9092"}, Topic: "t"}))
}

func TestNewProducerRejectsInvalidConfig(t *testing.T) {
	p, err := NewProducer(Config{})
	assert.Error(t, err)
	assert.Nil(t, p)
}

func TestNewSaramaConfig(t *testing.T) {
	sc := newSaramaConfig(Config{})
	assert.Equal(t, DefaultClientID, sc.ClientID)
	assert.Equal(t, KafkaVersion, sc.Version)
	assert.True(t, sc.Producer.Return.Successes)
	assert.Equal(t, sarama.WaitForLocal, sc.Producer.RequiredAcks)
	assert.NoError(t, sc.Validate())

	assert.Equal(t, "svc", newSaramaConfig(Config{ClientID: "svc"}).ClientID)
}

func TestProducerHealthCheckUninitialized(t *testing.T) {
	p := &producerImpl{}
	assert.Error(t, p.HealthCheck())
	assert.NoError(t, p.Close())
}
