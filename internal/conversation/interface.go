package conversation

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	GetConversations(ctx context.Context, ip GetConversationsInput) (GetConversationsOutput, error)
	GetCampaignIDContactIDsMap(ctx context.Context, ip GetCampaignIDContactIDsMapInput) (*CampaignContactIDsMap, error)
	ReassignConversations(ctx context.Context, ip ReassignInput) (ReassignOutput, error)
	BulkReassignConversations(ctx context.Context, ip BulkReassignInput) (ReassignOutput, error)
}

// Producer publishes conversation domain events.
//
//go:generate mockery --name Producer
type Producer interface {
	PublishReassigned(ctx context.Context, evt ReassignedEvent) error
}
