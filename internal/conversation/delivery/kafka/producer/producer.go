package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"conversation-srv/internal/conversation"
	kafkaDelivery "conversation-srv/internal/conversation/delivery/kafka"
	pkgKafka "conversation-srv/pkg/kafka"
)

// PublishReassigned publishes a reassigned event keyed by campaign id
func (p *implProducer) PublishReassigned(ctx context.Context, evt conversation.ReassignedEvent) error {
	msg := kafkaDelivery.ReassignedMessage{
		EventID:        evt.EventID,
		EventType:      conversation.EventTypeReassigned,
		OrganizationID: evt.OrganizationID,
		CampaignID:     evt.CampaignID,
		AssignmentID:   evt.AssignmentID,
		TexterUserID:   evt.TexterUserID,
		ContactIDs:     evt.ContactIDs,
		ReassignedAt:   evt.ReassignedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal reassigned event: %w", err)
	}

	key := []byte(strconv.FormatInt(evt.CampaignID, 10))
	header := pkgKafka.Header{Key: kafkaDelivery.HeaderEventType, Value: msg.EventType}
	if err := p.producer.Publish(key, body, header); err != nil {
		return fmt.Errorf("failed to publish reassigned event: %w", err)
	}

	p.l.Debugf(ctx, "Published reassigned event %s for campaign %d: %d contacts", evt.EventID, evt.CampaignID, len(evt.ContactIDs))
	return nil
}
