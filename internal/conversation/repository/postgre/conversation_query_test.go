package postgre

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"conversation-srv/internal/conversation"
	repo "conversation-srv/internal/conversation/repository"
)

func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }

func idsSQL(f conversation.Filter) (string, []interface{}) {
	r := &implRepository{}
	return toSQL(r.buildContactIDsQuery(repo.ListContactIDsOptions{OrganizationID: 1, Filter: f}))
}

func TestBuildConversationsFilter(t *testing.T) {
	tcs := map[string]struct {
		filter      conversation.Filter
		contains    []string
		notContains []string
		args        []interface{}
	}{
		"no filter": {
			contains: []string{
				"INNER JOIN campaign ON campaign.id = campaign_contact.campaign_id",
				"(campaign.organization_id = $1)",
			},
			notContains: []string{"JOIN assignment", "msgfilter", "tag_campaign_contact", "DISTINCT", "ORDER BY"},
			args:        []interface{}{int64(1)},
		},
		"unassigned texter": {
			filter: conversation.Filter{Assignments: conversation.AssignmentsFilter{TexterID: int64Ptr(conversation.UnassignedTexterID)}},
			contains: []string{
				"(campaign_contact.assignment_id IS NULL)",
				"JOIN assignment ON campaign_contact.assignment_id = assignment.id",
				`JOIN "user" ON assignment.user_id = "user".id`,
				"JOIN user_organization ON",
			},
			notContains: []string{"assignment.user_id = $"},
			args:        []interface{}{int64(1)},
		},
		"texter": {
			filter:   conversation.Filter{Assignments: conversation.AssignmentsFilter{TexterID: int64Ptr(7)}},
			contains: []string{"(assignment.user_id = $2)", "JOIN assignment ON"},
			args:     []interface{}{int64(1), int64(7)},
		},
		"zero texter is unset": {
			filter:      conversation.Filter{Assignments: conversation.AssignmentsFilter{TexterID: int64Ptr(0)}},
			notContains: []string{"JOIN assignment", "assignment_id IS NULL"},
			args:        []interface{}{int64(1)},
		},
		"sender": {
			filter: conversation.Filter{Assignments: conversation.AssignmentsFilter{TexterID: int64Ptr(7), Sender: true}},
			contains: []string{
				"INNER JOIN message AS msgfilter ON msgfilter.campaign_contact_id = campaign_contact.id",
				"(msgfilter.user_id = $2)",
				"DISTINCT campaign_contact.id AS cc_id",
			},
			notContains: []string{"JOIN assignment", "assignment.user_id"},
			args:        []interface{}{int64(1), int64(7)},
		},
		"message text": {
			filter:      conversation.Filter{MessageText: "hello"},
			contains:    []string{"JOIN message AS msgfilter", "(msgfilter.text LIKE $2)"},
			notContains: []string{"msgfilter.user_id"},
			args:        []interface{}{int64(1), "%hello%"},
		},
		"campaign id wins over campaign ids": {
			filter: conversation.Filter{Campaigns: conversation.CampaignsFilter{
				IsArchived:   boolPtr(false),
				CampaignID:   int64Ptr(3),
				CampaignIDs:  []int64{4, 5},
				SearchString: "GOTV",
			}},
			contains: []string{
				"(campaign.is_archived = $2)",
				"(campaign.id = $3)",
				"(lower(campaign.title) LIKE $4)",
			},
			notContains: []string{"campaign.id = ANY"},
			args:        []interface{}{int64(1), false, int64(3), "%gotv%"},
		},
		"campaign ids": {
			filter:   conversation.Filter{Campaigns: conversation.CampaignsFilter{CampaignIDs: []int64{4, 5}}},
			contains: []string{"(campaign.id = ANY($2))"},
			args:     []interface{}{int64(1), pq.Int64Array{4, 5}},
		},
		"needs message or response": {
			filter:   conversation.Filter{Contacts: conversation.ContactsFilter{MessageStatus: "needsMessageOrResponse"}},
			contains: []string{"(campaign_contact.message_status = ANY($2))"},
			args:     []interface{}{int64(1), pq.StringArray{"needsResponse", "needsMessage"}},
		},
		"message status list": {
			filter: conversation.Filter{Contacts: conversation.ContactsFilter{MessageStatus: "closed,messaged"}},
			args:   []interface{}{int64(1), pq.StringArray{"closed", "messaged"}},
		},
		"opted out false": {
			filter:   conversation.Filter{Contacts: conversation.ContactsFilter{IsOptedOut: boolPtr(false)}},
			contains: []string{"(campaign_contact.is_opted_out = $2)"},
			args:     []interface{}{int64(1), false},
		},
		"error code null": {
			filter:      conversation.Filter{Contacts: conversation.ContactsFilter{ErrorCode: []int{0}}},
			contains:    []string{"(campaign_contact.error_code IS NULL)"},
			notContains: []string{"error_code = ANY"},
			args:        []interface{}{int64(1)},
		},
		"error code zero is exclusive": {
			filter:      conversation.Filter{Contacts: conversation.ContactsFilter{ErrorCode: []int{0, 7}}},
			contains:    []string{"(campaign_contact.error_code IS NULL)"},
			notContains: []string{"error_code = ANY"},
			args:        []interface{}{int64(1)},
		},
		"error codes": {
			filter:      conversation.Filter{Contacts: conversation.ContactsFilter{ErrorCode: []int{7, 30}}},
			contains:    []string{"(campaign_contact.error_code = ANY($2))"},
			notContains: []string{"IS NULL"},
			args:        []interface{}{int64(1), pq.Int64Array{7, 30}},
		},
		"no tags": {
			filter:   conversation.Filter{Contacts: conversation.ContactsFilter{Tags: []string{}}},
			contains: []string{"(NOT EXISTS (SELECT 1 FROM tag_campaign_contact WHERE tag_campaign_contact.campaign_contact_id = campaign_contact.id))"},
			args:     []interface{}{int64(1)},
		},
		"any tag": {
			filter:      conversation.Filter{Contacts: conversation.ContactsFilter{Tags: []string{"*"}}},
			contains:    []string{"(EXISTS (SELECT 1 FROM tag_campaign_contact WHERE tag_campaign_contact.campaign_contact_id = campaign_contact.id))"},
			notContains: []string{"NOT EXISTS", "tag_id"},
			args:        []interface{}{int64(1)},
		},
		"tags": {
			filter:      conversation.Filter{Contacts: conversation.ContactsFilter{Tags: []string{"3", "5"}}},
			contains:    []string{"(EXISTS (SELECT 1 FROM tag_campaign_contact WHERE tag_campaign_contact.campaign_contact_id = campaign_contact.id AND tag_campaign_contact.tag_id = ANY($2)))"},
			notContains: []string{"NOT EXISTS"},
			args:        []interface{}{int64(1), pq.Int64Array{3, 5}},
		},
		"suppressed tags": {
			filter:   conversation.Filter{Contacts: conversation.ContactsFilter{SuppressedTags: []string{"s_4", "s_9"}}},
			contains: []string{"(NOT EXISTS (SELECT 1 FROM tag_campaign_contact WHERE tag_campaign_contact.campaign_contact_id = campaign_contact.id AND tag_campaign_contact.tag_id = ANY($2)))"},
			args:     []interface{}{int64(1), pq.Int64Array{4, 9}},
		},
		"order by raw disables distinct": {
			filter: conversation.Filter{
				MessageText: "hi",
				Contacts:    conversation.ContactsFilter{OrderByRaw: "campaign_contact.updated_at DESC"},
			},
			contains:    []string{"ORDER BY campaign_contact.updated_at DESC"},
			notContains: []string{"DISTINCT"},
			args:        []interface{}{int64(1), "%hi%"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			sql, args := idsSQL(tc.filter)
			for _, s := range tc.contains {
				assert.Contains(t, sql, s)
			}
			for _, s := range tc.notContains {
				assert.NotContains(t, sql, s)
			}
			assert.Equal(t, tc.args, args)
		})
	}
}

func TestBuildConversationsFilterUpdatedAt(t *testing.T) {
	gt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	lt := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	sql, args := idsSQL(conversation.Filter{Contacts: conversation.ContactsFilter{UpdatedAtGt: &gt, UpdatedAtLt: &lt}})

	assert.Contains(t, sql, "(campaign_contact.updated_at > $2) AND (campaign_contact.updated_at < $3)")
	assert.Equal(t, []interface{}{int64(1), gt, lt}, args)
}

func TestBuildContactIDsQueryPaging(t *testing.T) {
	r := &implRepository{}
	sql, _ := toSQL(r.buildContactIDsQuery(repo.ListContactIDsOptions{
		OrganizationID: 1,
		Filter:         conversation.Filter{Contacts: conversation.ContactsFilter{OrderByRaw: "campaign_contact.updated_at DESC"}},
		Limit:          10,
		Offset:         20,
		OrderByIDDesc:  true,
	}))

	assert.Contains(t, sql, "ORDER BY campaign_contact.updated_at DESC, cc_id DESC")
	assert.Contains(t, sql, "LIMIT 10")
	assert.Contains(t, sql, "OFFSET 20")
}

func TestBuildContactIDsQueryPagingOnlyNarrows(t *testing.T) {
	r := &implRepository{}
	tcs := map[string]struct {
		filter   conversation.Filter
		distinct bool
	}{
		"message join": {
			filter:   conversation.Filter{MessageText: "hi"},
			distinct: true,
		},
		"message join with raw order": {
			filter: conversation.Filter{
				MessageText: "hi",
				Contacts:    conversation.ContactsFilter{OrderByRaw: "campaign_contact.updated_at DESC"},
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			all, allArgs := toSQL(r.buildContactIDsQuery(repo.ListContactIDsOptions{OrganizationID: 1, Filter: tc.filter}))
			page, pageArgs := toSQL(r.buildContactIDsQuery(repo.ListContactIDsOptions{
				OrganizationID: 1,
				Filter:         tc.filter,
				Limit:          10,
				Offset:         20,
				OrderByIDDesc:  true,
			}))

			assert.True(t, strings.HasPrefix(page, strings.TrimSuffix(all, ";")), "paged: %s\nunpaged: %s", page, all)
			assert.Equal(t, allArgs, pageArgs)
			assert.Equal(t, tc.distinct, strings.Contains(all, "DISTINCT"))
			assert.Equal(t, tc.distinct, strings.Contains(page, "DISTINCT"))
		})
	}
}

func TestBuildConversationRowsQuery(t *testing.T) {
	r := &implRepository{}
	sql, args := toSQL(r.buildConversationRowsQuery(repo.ListConversationRowsOptions{
		OrganizationID: 1,
		Filter:         conversation.Filter{MessageText: "hello", Assignments: conversation.AssignmentsFilter{Sender: true}},
		ContactIDs:     []int64{5, 3},
	}))

	assert.Contains(t, sql, "campaign_contact.id AS cc_id")
	assert.Contains(t, sql, "message.id AS mess_id")
	assert.Contains(t, sql, "user_organization.role AS u_role")
	assert.Contains(t, sql, "JOIN assignment ON")
	assert.Contains(t, sql, "JOIN message ON message.campaign_contact_id = campaign_contact.id")
	assert.NotContains(t, sql, "msgfilter")
	assert.Contains(t, sql, "(campaign_contact.id = ANY($2))")
	assert.Contains(t, sql, "ORDER BY cc_id DESC, message.id")
	assert.Equal(t, []interface{}{int64(1), pq.Int64Array{5, 3}}, args)
}

func TestBuildCountQuery(t *testing.T) {
	r := &implRepository{}
	f := conversation.Filter{
		MessageText: "hi",
		Contacts:    conversation.ContactsFilter{OrderByRaw: "campaign_contact.updated_at DESC"},
	}
	sql, args := toSQL(r.buildCountQuery(repo.CountConversationsOptions{OrganizationID: 1, Filter: f}))

	assert.Contains(t, sql, "COUNT(DISTINCT campaign_contact.id)")
	assert.Contains(t, sql, "JOIN message AS msgfilter")
	assert.NotContains(t, sql, "ORDER BY")
	assert.NotContains(t, sql, "LIMIT")
	assert.Equal(t, []interface{}{int64(1), "%hi%"}, args)
	assert.Equal(t, "campaign_contact.updated_at DESC", f.Contacts.OrderByRaw)
}

func TestBuildCampaignContactIDsQuery(t *testing.T) {
	r := &implRepository{}
	sql, _ := toSQL(r.buildCampaignContactIDsQuery(repo.ListCampaignContactIDsOptions{OrganizationID: 1}))

	assert.Contains(t, sql, "campaign_contact.id AS cc_id, campaign.id AS cmp_id")
	assert.Contains(t, sql, "ORDER BY cc_id")
}

func TestBuildTagsQuery(t *testing.T) {
	r := &implRepository{}
	sql, args := toSQL(r.buildTagsQuery([]int64{1, 2}))

	assert.Contains(t, sql, "JOIN tag ON tag.id = tag_campaign_contact.tag_id")
	assert.Contains(t, sql, "(tag_campaign_contact.campaign_contact_id = ANY($1))")
	assert.Equal(t, []interface{}{pq.Int64Array{1, 2}}, args)
}

func TestBuildContactIDsQueryIsDeterministic(t *testing.T) {
	r := &implRepository{}
	f := conversation.Filter{Contacts: conversation.ContactsFilter{Tags: []string{"3"}}}
	opt := repo.ListContactIDsOptions{OrganizationID: 1, Filter: f}

	q1 := r.BuildContactIDsQuery(context.Background(), opt)
	q2 := r.BuildContactIDsQuery(context.Background(), opt)
	assert.Equal(t, q1, q2)
	assert.NotEmpty(t, q1.SQL)
}
