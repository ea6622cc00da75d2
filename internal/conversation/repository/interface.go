package repository

import (
	"context"

	"conversation-srv/internal/conversation"
	"conversation-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ConversationRepository
	AssignmentRepository
}

// ConversationRepository - Queries over campaign_contact and its joins
type ConversationRepository interface {
	BuildContactIDsQuery(ctx context.Context, opt ListContactIDsOptions) conversation.Query
	ListContactIDs(ctx context.Context, opt ListContactIDsOptions) ([]int64, error)
	ListConversationRows(ctx context.Context, opt ListConversationRowsOptions) ([]model.Row, error)
	ListTags(ctx context.Context, contactIDs []int64) ([]model.Tag, error)
	CountConversations(ctx context.Context, opt CountConversationsOptions) (int64, error)
	ListCampaignContactIDs(ctx context.Context, opt ListCampaignContactIDsOptions) ([]CampaignContactID, error)
	UpdateContactsAssignment(ctx context.Context, opt UpdateContactsAssignmentOptions) (int64, error)
}

// AssignmentRepository - Operations for assignment table
type AssignmentRepository interface {
	GetAssignment(ctx context.Context, opt GetAssignmentOptions) (model.Assignment, error)
	CreateAssignment(ctx context.Context, opt CreateAssignmentOptions) (model.Assignment, error)
}

// CacheRepository keeps cached campaign contacts in sync with their assignment.
// UpdateAssignmentCache is idempotent and safe to call concurrently for distinct contacts.
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	UpdateAssignmentCache(ctx context.Context, contactID int64, assignmentID *int64, texterID *int64, campaignID int64) error
}
