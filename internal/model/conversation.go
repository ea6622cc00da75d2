package model

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"conversation-srv/pkg/util"
)

// Aliased column names of the conversation detail query.
const (
	ColContactID        = "cc_id"
	ColContactFirstName = "cc_first_name"
	ColContactLastName  = "cc_last_name"
	ColAssignmentID     = "assignment_id"
	ColTexterID         = "u_id"
	ColTexterFirstName  = "u_first_name"
	ColTexterLastName   = "u_last_name"
	ColTexterRole       = "u_role"
	ColCampaignID       = "cmp_id"
	ColMessageID        = "mess_id"
)

// MessageColumns are the detail query columns that describe a message
// rather than the conversation.
var MessageColumns = []string{
	ColMessageID,
	"text",
	"user_number",
	"contact_number",
	"created_at",
	"is_from_contact",
}

var (
	texterFields   = map[string]string{ColTexterID: "id", ColTexterFirstName: "first_name", ColTexterLastName: "last_name", ColTexterRole: "role"}
	contactFields  = map[string]string{ColContactID: "id", ColContactFirstName: "first_name", ColContactLastName: "last_name"}
	campaignFields = map[string]string{ColCampaignID: "id"}
	messageFields  = map[string]string{ColMessageID: "id"}
)

// Row is one result row keyed by column name (or alias).
type Row map[string]interface{}

// Int64 returns the integer stored under key.
func (r Row) Int64(key string) (int64, bool) {
	switch v := r[key].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case float64:
		return int64(v), true
	}
	return 0, false
}

// Pick returns a copy holding only keys.
func (r Row) Pick(keys []string) Row {
	out := make(Row, len(keys))
	for _, k := range keys {
		if v, ok := r[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Omit returns a copy without keys.
func (r Row) Omit(keys []string) Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Conversation is a contact with its assignment, campaign and message thread.
// Row keeps the flat aliased columns; Texter, Contact and Campaign project them.
type Conversation struct {
	Row            Row
	Messages       []Message
	Tags           []Tag
	OrganizationID int64
}

// ContactID returns the campaign contact id of the conversation.
func (c Conversation) ContactID() int64 {
	id, _ := c.Row.Int64(ColContactID)
	return id
}

// Texter projects the assigned texter.
func (c Conversation) Texter() (Texter, error) {
	var t Texter
	if err := decodeRow(util.RemapKeys(c.Row, texterFields), &t); err != nil {
		return Texter{}, fmt.Errorf("Texter: %w", err)
	}
	return t, nil
}

// Contact projects the campaign contact.
func (c Conversation) Contact() (Contact, error) {
	var ct Contact
	if err := decodeRow(util.RemapKeys(c.Row, contactFields), &ct); err != nil {
		return Contact{}, fmt.Errorf("Contact: %w", err)
	}
	return ct, nil
}

// Campaign projects the campaign.
func (c Conversation) Campaign() (Campaign, error) {
	var cmp Campaign
	if err := decodeRow(util.RemapKeys(c.Row, campaignFields), &cmp); err != nil {
		return Campaign{}, fmt.Errorf("Campaign: %w", err)
	}
	return cmp, nil
}

func decodeRow(row map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(row)
}
