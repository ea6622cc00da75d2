package model

import "time"

// Contact is a campaign_contact, one person targeted within one campaign.
type Contact struct {
	ID            int64      `mapstructure:"id"`
	FirstName     string     `mapstructure:"first_name"`
	LastName      string     `mapstructure:"last_name"`
	Cell          string     `mapstructure:"cell"`
	ErrorCode     *int64     `mapstructure:"error_code"`
	MessageStatus string     `mapstructure:"message_status"`
	IsOptedOut    bool       `mapstructure:"is_opted_out"`
	UpdatedAt     *time.Time `mapstructure:"updated_at"`
	AssignmentID  *int64     `mapstructure:"assignment_id"`
}
