package model

// Tag is a label attached to a campaign contact.
type Tag struct {
	ID                int64
	Name              string
	Value             *string
	CampaignContactID int64
}
