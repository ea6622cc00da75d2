package postgre

import (
	"strings"

	"github.com/aarondl/sqlboiler/v4/drivers"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/lib/pq"

	"conversation-srv/internal/conversation"
	repo "conversation-srv/internal/conversation/repository"
	"conversation-srv/pkg/util"
)

var dialect = drivers.Dialect{
	LQ:                   '"',
	RQ:                   '"',
	UseIndexPlaceholders: true,
}

const tagExistsSubquery = "SELECT 1 FROM tag_campaign_contact WHERE tag_campaign_contact.campaign_contact_id = campaign_contact.id"

// detailColumns is the projection of the detail query. Every column is
// aliased so that clashing names across joined tables stay distinct.
var detailColumns = []string{
	"campaign_contact.id AS cc_id",
	"campaign_contact.first_name AS cc_first_name",
	"campaign_contact.last_name AS cc_last_name",
	"campaign_contact.cell AS cell",
	"campaign_contact.error_code AS error_code",
	"campaign_contact.message_status AS message_status",
	"campaign_contact.is_opted_out AS is_opted_out",
	"campaign_contact.updated_at AS updated_at",
	"assignment.id AS assignment_id",
	`"user".id AS u_id`,
	`"user".first_name AS u_first_name`,
	`"user".last_name AS u_last_name`,
	"user_organization.role AS u_role",
	"campaign.id AS cmp_id",
	"campaign.title AS title",
	"campaign.due_by AS due_by",
	"assignment.id AS ass_id",
	"message.id AS mess_id",
	"message.text AS text",
	"message.user_number AS user_number",
	"message.contact_number AS contact_number",
	"message.created_at AS created_at",
	"message.is_from_contact AS is_from_contact",
}

// buildConversationsFilter composes the joins and predicates shared by every
// conversation query. forData selects the detail shape: the assignment and
// user joins are always added and the filter-only message join never is.
// Predicates are conjunctive; an absent key adds nothing.
func buildConversationsFilter(organizationID int64, f conversation.Filter, forData bool) []qm.QueryMod {
	mods := []qm.QueryMod{
		qm.From("campaign_contact"),
		qm.InnerJoin("campaign ON campaign.id = campaign_contact.campaign_id"),
	}

	mods = append(mods, buildCampaignsFilter(organizationID, f.Campaigns)...)

	if f.Assignments.ByAssignment() {
		if *f.Assignments.TexterID == conversation.UnassignedTexterID {
			mods = append(mods, qm.Where("campaign_contact.assignment_id IS NULL"))
		} else {
			mods = append(mods, qm.Where("assignment.user_id = ?", *f.Assignments.TexterID))
		}
	}

	if forData || f.Assignments.ByAssignment() {
		mods = append(mods,
			qm.LeftOuterJoin("assignment ON campaign_contact.assignment_id = assignment.id"),
			qm.LeftOuterJoin(`"user" ON assignment.user_id = "user".id`),
			qm.LeftOuterJoin(`user_organization ON user_organization.user_id = "user".id AND user_organization.organization_id = campaign.organization_id`),
		)
	}

	if filterUsesMessageJoin(f, forData) {
		mods = append(mods, qm.InnerJoin("message AS msgfilter ON msgfilter.campaign_contact_id = campaign_contact.id"))
		if f.MessageText != "" {
			mods = append(mods, qm.Where("msgfilter.text LIKE ?", "%"+f.MessageText+"%"))
		}
		if f.Assignments.BySender() {
			mods = append(mods, qm.Where("msgfilter.user_id = ?", *f.Assignments.TexterID))
		}
	}

	mods = append(mods, buildContactsFilter(f.Contacts)...)

	return mods
}

// filterUsesMessageJoin reports whether the filter-only message join is part
// of the query. It can yield one row per matching message.
func filterUsesMessageJoin(f conversation.Filter, forData bool) bool {
	return !forData && (f.MessageText != "" || f.Assignments.Sender)
}

// buildCampaignsFilter - campaign membership predicate
func buildCampaignsFilter(organizationID int64, f conversation.CampaignsFilter) []qm.QueryMod {
	mods := []qm.QueryMod{}

	if organizationID != 0 {
		mods = append(mods, qm.Where("campaign.organization_id = ?", organizationID))
	}
	if f.IsArchived != nil {
		mods = append(mods, qm.Where("campaign.is_archived = ?", *f.IsArchived))
	}
	if f.CampaignID != nil {
		mods = append(mods, qm.Where("campaign.id = ?", *f.CampaignID))
	} else if len(f.CampaignIDs) > 0 {
		mods = append(mods, qm.Where("campaign.id = ANY(?)", pq.Int64Array(f.CampaignIDs)))
	}
	if f.SearchString != "" {
		mods = append(mods, qm.Where("lower(campaign.title) LIKE ?", strings.ToLower("%"+f.SearchString+"%")))
	}

	return mods
}

// buildContactsFilter - campaign_contact attribute predicates
func buildContactsFilter(f conversation.ContactsFilter) []qm.QueryMod {
	mods := []qm.QueryMod{}

	if statuses := messageStatuses(f.MessageStatus); len(statuses) > 0 {
		mods = append(mods, qm.Where("campaign_contact.message_status = ANY(?)", pq.StringArray(statuses)))
	}

	if f.UpdatedAtGt != nil {
		mods = append(mods, qm.Where("campaign_contact.updated_at > ?", *f.UpdatedAtGt))
	}
	if f.UpdatedAtLt != nil {
		mods = append(mods, qm.Where("campaign_contact.updated_at < ?", *f.UpdatedAtLt))
	}

	if f.IsOptedOut != nil {
		mods = append(mods, qm.Where("campaign_contact.is_opted_out = ?", *f.IsOptedOut))
	}

	if len(f.ErrorCode) > 0 {
		if f.ErrorCode[0] == 0 {
			// exclusive: other codes in the list are ignored
			mods = append(mods, qm.Where("campaign_contact.error_code IS NULL"))
		} else {
			codes := make([]int64, len(f.ErrorCode))
			for i, c := range f.ErrorCode {
				codes[i] = int64(c)
			}
			mods = append(mods, qm.Where("campaign_contact.error_code = ANY(?)", pq.Int64Array(codes)))
		}
	}

	if f.Tags != nil {
		switch {
		case len(f.Tags) == 0:
			mods = append(mods, qm.Where("NOT EXISTS ("+tagExistsSubquery+")"))
		case len(f.Tags) == 1 && f.Tags[0] == conversation.TagWildcard:
			mods = append(mods, qm.Where("EXISTS ("+tagExistsSubquery+")"))
		default:
			mods = append(mods, qm.Where("EXISTS ("+tagExistsSubquery+" AND tag_campaign_contact.tag_id = ANY(?))", pq.Int64Array(tagIDs(f.Tags))))
		}
	}

	if len(f.SuppressedTags) > 0 {
		suppressed := make([]string, len(f.SuppressedTags))
		for i, id := range f.SuppressedTags {
			suppressed[i] = strings.Replace(id, conversation.SuppressedTagPrefix, "", 1)
		}
		mods = append(mods, qm.Where("NOT EXISTS ("+tagExistsSubquery+" AND tag_campaign_contact.tag_id = ANY(?))", pq.Int64Array(tagIDs(suppressed))))
	}

	if f.OrderByRaw != "" {
		mods = append(mods, qm.OrderBy(f.OrderByRaw))
	}

	return mods
}

// messageStatuses expands the message status filter, ignoring past-due distinctions.
func messageStatuses(status string) []string {
	if status == "" {
		return nil
	}
	if status == conversation.MessageStatusNeedsMessageOrResponse {
		return []string{"needsResponse", "needsMessage"}
	}
	return strings.Split(status, ",")
}

// tagIDs converts validated tag ids. Entries that do not parse are dropped.
func tagIDs(tags []string) []int64 {
	ids := make([]int64, 0, len(tags))
	for _, t := range tags {
		if id, err := util.ParseID(t); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// buildContactIDsQuery - scoped-ids query
func (r *implRepository) buildContactIDsQuery(opt repo.ListContactIDsOptions) []qm.QueryMod {
	sel := "campaign_contact.id AS cc_id"
	if filterUsesMessageJoin(opt.Filter, false) && opt.Filter.Contacts.OrderByRaw == "" {
		sel = "DISTINCT " + sel
	}

	mods := []qm.QueryMod{qm.Select(sel)}
	mods = append(mods, buildConversationsFilter(opt.OrganizationID, opt.Filter, false)...)

	if opt.OrderByIDDesc {
		mods = append(mods, qm.OrderBy("cc_id DESC"))
	}
	if opt.Limit > 0 {
		mods = append(mods, qm.Limit(opt.Limit))
	}
	if opt.Offset > 0 {
		mods = append(mods, qm.Offset(opt.Offset))
	}

	return mods
}

// buildConversationRowsQuery - detail query over every message of the scoped contacts
func (r *implRepository) buildConversationRowsQuery(opt repo.ListConversationRowsOptions) []qm.QueryMod {
	mods := []qm.QueryMod{qm.Select(detailColumns...)}
	mods = append(mods, buildConversationsFilter(opt.OrganizationID, opt.Filter, true)...)
	mods = append(mods,
		qm.Where("campaign_contact.id = ANY(?)", pq.Int64Array(opt.ContactIDs)),
		qm.LeftOuterJoin("message ON message.campaign_contact_id = campaign_contact.id"),
		qm.OrderBy("cc_id DESC"),
		qm.OrderBy("message.id"),
	)

	return mods
}

// buildCountQuery - total count without ordering or paging
func (r *implRepository) buildCountQuery(opt repo.CountConversationsOptions) []qm.QueryMod {
	f := opt.Filter
	f.Contacts.OrderByRaw = ""

	mods := []qm.QueryMod{qm.Select("COUNT(DISTINCT campaign_contact.id) AS count")}
	mods = append(mods, buildConversationsFilter(opt.OrganizationID, f, false)...)

	return mods
}

// buildCampaignContactIDsQuery - campaign/contact index query
func (r *implRepository) buildCampaignContactIDsQuery(opt repo.ListCampaignContactIDsOptions) []qm.QueryMod {
	mods := []qm.QueryMod{qm.Select("campaign_contact.id AS cc_id", "campaign.id AS cmp_id")}
	mods = append(mods, buildConversationsFilter(opt.OrganizationID, opt.Filter, false)...)
	mods = append(mods, qm.OrderBy("cc_id"))

	return mods
}

// buildTagsQuery - tags of the scoped contacts
func (r *implRepository) buildTagsQuery(contactIDs []int64) []qm.QueryMod {
	return []qm.QueryMod{
		qm.Select(
			"tag_campaign_contact.campaign_contact_id AS campaign_contact_id",
			"tag.name AS name",
			"tag.id AS id",
			"tag_campaign_contact.value AS value",
		),
		qm.From("tag_campaign_contact"),
		qm.InnerJoin("tag ON tag.id = tag_campaign_contact.tag_id"),
		qm.Where("tag_campaign_contact.campaign_contact_id = ANY(?)", pq.Int64Array(contactIDs)),
	}
}

// toSQL renders mods into Postgres SQL with $n placeholders.
func toSQL(mods []qm.QueryMod) (string, []interface{}) {
	q := &queries.Query{}
	queries.SetDialect(q, &dialect)
	qm.Apply(q, mods...)
	return queries.BuildQuery(q)
}
