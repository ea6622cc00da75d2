package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detailRow() Row {
	return Row{
		"cc_id":           int64(12),
		"cc_first_name":   "Ana",
		"cc_last_name":    "Lopez",
		"cell":            "+15550100",
		"error_code":      nil,
		"message_status":  "needsResponse",
		"is_opted_out":    false,
		"updated_at":      "2024-01-01T00:00:00Z",
		"assignment_id":   int64(4),
		"u_id":            int64(7),
		"u_first_name":    "Tex",
		"u_last_name":     "Ter",
		"u_role":          "TEXTER",
		"cmp_id":          int64(3),
		"title":           "GOTV",
		"due_by":          nil,
		"mess_id":         int64(100),
		"text":            "hi",
		"user_number":     "+15550199",
		"contact_number":  "+15550100",
		"created_at":      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		"is_from_contact": true,
	}
}

func TestConversationResolvers(t *testing.T) {
	c := Conversation{Row: detailRow().Omit(MessageColumns), OrganizationID: 1}

	assert.Equal(t, int64(12), c.ContactID())

	texter, err := c.Texter()
	require.NoError(t, err)
	require.NotNil(t, texter.ID)
	assert.Equal(t, int64(7), *texter.ID)
	assert.Equal(t, "Tex", texter.FirstName)
	assert.Equal(t, "TEXTER", texter.Role)

	contact, err := c.Contact()
	require.NoError(t, err)
	assert.Equal(t, int64(12), contact.ID)
	assert.Equal(t, "Ana", contact.FirstName)
	assert.Equal(t, "Lopez", contact.LastName)
	assert.Nil(t, contact.ErrorCode)
	require.NotNil(t, contact.UpdatedAt)
	assert.True(t, contact.UpdatedAt.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, contact.AssignmentID)
	assert.Equal(t, int64(4), *contact.AssignmentID)

	campaign, err := c.Campaign()
	require.NoError(t, err)
	assert.Equal(t, int64(3), campaign.ID)
	assert.Equal(t, "GOTV", campaign.Title)
	assert.Nil(t, campaign.DueBy)
}

func TestConversationTexterUnassigned(t *testing.T) {
	row := detailRow()
	row["u_id"] = nil
	row["u_first_name"] = nil

	texter, err := Conversation{Row: row}.Texter()
	require.NoError(t, err)
	assert.Nil(t, texter.ID)
	assert.Empty(t, texter.FirstName)
}

func TestNewMessageFromRow(t *testing.T) {
	m, err := NewMessageFromRow(detailRow())
	require.NoError(t, err)
	assert.Equal(t, int64(100), m.ID)
	assert.Equal(t, "hi", m.Text)
	assert.Equal(t, "+15550199", m.UserNumber)
	assert.True(t, m.IsFromContact)
}

func TestRowPickOmit(t *testing.T) {
	row := detailRow()

	picked := row.Pick(MessageColumns)
	assert.Len(t, picked, len(MessageColumns))

	omitted := row.Omit(MessageColumns)
	assert.NotContains(t, omitted, "mess_id")
	assert.Contains(t, omitted, "cc_id")
	assert.Contains(t, row, "mess_id")
}
