package repository

import "conversation-srv/internal/conversation"

// =====================================================
// Conversation Options
// =====================================================

// ListContactIDsOptions - Options for the scoped-ids query
type ListContactIDsOptions struct {
	OrganizationID int64
	Filter         conversation.Filter

	// Pagination (0 = unbounded)
	Limit  int
	Offset int

	// OrderByIDDesc orders by contact id descending after any raw order.
	OrderByIDDesc bool
}

// ListConversationRowsOptions - Options for the detail query
type ListConversationRowsOptions struct {
	OrganizationID int64
	Filter         conversation.Filter
	ContactIDs     []int64
}

// CountConversationsOptions - Options for the count query
type CountConversationsOptions struct {
	OrganizationID int64
	Filter         conversation.Filter
}

// ListCampaignContactIDsOptions - Options for the campaign/contact index query
type ListCampaignContactIDsOptions struct {
	OrganizationID int64
	Filter         conversation.Filter
}

// CampaignContactID is one row of the campaign/contact index query.
type CampaignContactID struct {
	ContactID  int64
	CampaignID int64
}

// UpdateContactsAssignmentOptions - Options for pointing contacts at an assignment.
// A nil AssignmentID unassigns the contacts.
type UpdateContactsAssignmentOptions struct {
	CampaignID   int64
	ContactIDs   []int64
	AssignmentID *int64
}

// =====================================================
// Assignment Options
// =====================================================

// GetAssignmentOptions - Options for finding the assignment of a user in a campaign
type GetAssignmentOptions struct {
	UserID     int64
	CampaignID int64
}

// CreateAssignmentOptions - Options for Create operation
type CreateAssignmentOptions struct {
	UserID      int64
	CampaignID  int64
	MaxContacts int
}
