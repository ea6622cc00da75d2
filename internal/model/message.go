package model

import (
	"fmt"
	"time"

	"conversation-srv/pkg/util"
)

// Message is one message of a conversation thread.
type Message struct {
	ID            int64     `mapstructure:"id"`
	Text          string    `mapstructure:"text"`
	UserNumber    string    `mapstructure:"user_number"`
	ContactNumber string    `mapstructure:"contact_number"`
	CreatedAt     time.Time `mapstructure:"created_at"`
	IsFromContact bool      `mapstructure:"is_from_contact"`
}

// NewMessageFromRow builds a Message from the message columns of a detail row.
func NewMessageFromRow(row Row) (Message, error) {
	var m Message
	if err := decodeRow(util.RemapKeys(row.Pick(MessageColumns), messageFields), &m); err != nil {
		return Message{}, fmt.Errorf("NewMessageFromRow: %w", err)
	}
	return m, nil
}
