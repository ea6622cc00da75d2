package conversation

import (
	"time"

	"conversation-srv/internal/model"
	"conversation-srv/pkg/paginator"
)

// ============================================
// Filter
// ============================================

// Filter is the composite conversation filter. A zero sub-filter adds no constraint.
type Filter struct {
	Campaigns   CampaignsFilter
	Assignments AssignmentsFilter
	Contacts    ContactsFilter
	MessageText string
}

// CampaignsFilter constrains campaign membership.
type CampaignsFilter struct {
	IsArchived   *bool
	CampaignID   *int64 // wins over CampaignIDs
	CampaignIDs  []int64
	SearchString string // case-insensitive title substring
}

// AssignmentsFilter constrains by texter. Nil or 0 TexterID means unset.
type AssignmentsFilter struct {
	TexterID *int64
	// Sender filters by the user who sent a message rather than the assignment owner.
	Sender bool
}

// HasTexter reports whether a texter id is set.
func (f AssignmentsFilter) HasTexter() bool {
	return f.TexterID != nil && *f.TexterID != 0
}

// ByAssignment reports whether contacts are constrained by their assignment owner.
func (f AssignmentsFilter) ByAssignment() bool {
	return f.HasTexter() && !f.Sender
}

// BySender reports whether contacts are constrained by a message sender.
func (f AssignmentsFilter) BySender() bool {
	return f.HasTexter() && f.Sender
}

// ContactsFilter constrains campaign contact attributes.
type ContactsFilter struct {
	// MessageStatus is a comma separated list or MessageStatusNeedsMessageOrResponse.
	MessageStatus string
	UpdatedAtGt   *time.Time
	UpdatedAtLt   *time.Time
	// IsOptedOut nil means the key is absent.
	IsOptedOut *bool
	// ErrorCode with a leading 0 selects only contacts without an error code.
	ErrorCode []int
	// Tags nil means absent, empty means no tags, [TagWildcard] means any tag.
	Tags []string
	// SuppressedTags are prefixed with SuppressedTagPrefix.
	SuppressedTags []string
	OrderByRaw     string
}

// ============================================
// Query
// ============================================

// Query is a built, unexecuted SQL statement.
type Query struct {
	SQL  string
	Args []interface{}
}

// ============================================
// UseCase Input/Output Types
// ============================================

// GetConversationsInput is the input for GetConversations
type GetConversationsInput struct {
	OrganizationID int64
	Cursor         *paginator.Cursor
	Filter         Filter
	IncludeTags    bool
	// JustIDQuery returns the scoped-ids query without running anything.
	JustIDQuery bool
}

// GetConversationsOutput is the output of GetConversations.
// IDQuery is only set for JustIDQuery calls.
type GetConversationsOutput struct {
	Conversations []model.Conversation
	PageInfo      paginator.PageInfo
	IDQuery       *Query
}

// GetCampaignIDContactIDsMapInput is the input for GetCampaignIDContactIDsMap
type GetCampaignIDContactIDsMapInput struct {
	OrganizationID int64
	Filter         Filter
}

// ReassignInput is the input for ReassignConversations.
// An empty NewTexterUserID or UnassignTexterUserID unassigns the contacts.
type ReassignInput struct {
	OrganizationID     int64
	CampaignContactIDs *CampaignContactIDsMap
	NewTexterUserID    string
}

// BulkReassignInput is the input for BulkReassignConversations
type BulkReassignInput struct {
	OrganizationID  int64
	Filter          Filter
	NewTexterUserID string
}

// ReassignResult is reported once per updated chunk. AssignmentID is nil when unassigned.
type ReassignResult struct {
	CampaignID   int64
	AssignmentID *int64
}

// CacheFailure is a contact whose cache entry could not be updated.
type CacheFailure struct {
	ContactID  int64
	CampaignID int64
	Err        error
}

// ReassignOutput reports what was reassigned. Err holds the error that stopped
// processing; Results then lists only the chunks updated before it.
type ReassignOutput struct {
	Results       []ReassignResult
	CacheFailures []CacheFailure
	Err           error
}

// ============================================
// Event Types
// ============================================

// ReassignedEvent is published after a chunk of contacts is reassigned.
type ReassignedEvent struct {
	EventID        string
	OrganizationID int64
	CampaignID     int64
	AssignmentID   *int64
	TexterUserID   *int64
	ContactIDs     []int64
	ReassignedAt   time.Time
}
