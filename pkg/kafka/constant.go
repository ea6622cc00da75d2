package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	// DefaultClientID is used when Config.ClientID is empty.
	DefaultClientID = "conversation-srv"
	// ProducerTimeout bounds a produce request.
	ProducerTimeout = 10 * time.Second
	// ProducerRetryMax is the max producer retries.
	ProducerRetryMax = 3
	// ProducerRetryBackoff is the wait between retries.
	ProducerRetryBackoff = 250 * time.Millisecond
)

// KafkaVersion is the protocol version negotiated with the brokers.
var KafkaVersion = sarama.V2_8_0_0
