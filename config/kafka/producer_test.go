package kafka

import (
	"testing"

	"conversation-srv/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducerNotConnected(t *testing.T) {
	require.NoError(t, DisconnectProducer())

	assert.Error(t, ProducerHealthCheck())
	assert.NoError(t, DisconnectProducer())
}

func TestConnectProducerInvalidConfig(t *testing.T) {
	_, err := ConnectProducer(config.KafkaConfig{Topic: "conversation.events"})
	assert.Error(t, err)
	assert.Error(t, ProducerHealthCheck())
}
