package model

// Assignment links a texter to a campaign.
type Assignment struct {
	ID          int64
	UserID      int64
	CampaignID  int64
	MaxContacts *int
}
