package producer

import (
	"conversation-srv/internal/conversation"
	pkgKafka "conversation-srv/pkg/kafka"
	"conversation-srv/pkg/log"
)

// Producer interface for conversation domain
type Producer interface {
	conversation.Producer
}

// implProducer implements the Producer interface
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new conversation producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
