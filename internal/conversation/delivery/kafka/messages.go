package kafka

import (
	"time"
)

// ReassignedMessage - Kafka message for conversation.reassigned
type ReassignedMessage struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	OrganizationID int64     `json:"organization_id"`
	CampaignID     int64     `json:"campaign_id"`
	AssignmentID   *int64    `json:"assignment_id"`
	TexterUserID   *int64    `json:"texter_user_id"`
	ContactIDs     []int64   `json:"contact_ids"`
	ReassignedAt   time.Time `json:"reassigned_at"`
}
