package http

import (
	"fmt"
	"time"

	"conversation-srv/internal/conversation"
	"conversation-srv/internal/model"
	"conversation-srv/pkg/paginator"
)

type campaignsFilterReq struct {
	IsArchived   *bool   `json:"is_archived,omitempty"`
	CampaignID   *int64  `json:"campaign_id,omitempty"`
	CampaignIDs  []int64 `json:"campaign_ids,omitempty"`
	SearchString string  `json:"search_string,omitempty"`
}

type assignmentsFilterReq struct {
	TexterID *int64 `json:"texter_id,omitempty"`
	Sender   bool   `json:"sender,omitempty"`
}

type contactsFilterReq struct {
	MessageStatus  string     `json:"message_status,omitempty"`
	UpdatedAtGt    *time.Time `json:"updated_at_gt,omitempty"`
	UpdatedAtLt    *time.Time `json:"updated_at_lt,omitempty"`
	IsOptedOut     *bool      `json:"is_opted_out,omitempty"`
	ErrorCode      []int      `json:"error_code,omitempty"`
	Tags           []string   `json:"tags"`
	SuppressedTags []string   `json:"suppressed_tags,omitempty"`
}

type filterReq struct {
	Campaigns   campaignsFilterReq   `json:"campaigns_filter"`
	Assignments assignmentsFilterReq `json:"assignments_filter"`
	Contacts    contactsFilterReq    `json:"contacts_filter"`
	MessageText string               `json:"message_text_filter,omitempty"`
}

func (r filterReq) toFilter() conversation.Filter {
	return conversation.Filter{
		Campaigns: conversation.CampaignsFilter{
			IsArchived:   r.Campaigns.IsArchived,
			CampaignID:   r.Campaigns.CampaignID,
			CampaignIDs:  r.Campaigns.CampaignIDs,
			SearchString: r.Campaigns.SearchString,
		},
		Assignments: conversation.AssignmentsFilter{
			TexterID: r.Assignments.TexterID,
			Sender:   r.Assignments.Sender,
		},
		Contacts: conversation.ContactsFilter{
			MessageStatus:  r.Contacts.MessageStatus,
			UpdatedAtGt:    r.Contacts.UpdatedAtGt,
			UpdatedAtLt:    r.Contacts.UpdatedAtLt,
			IsOptedOut:     r.Contacts.IsOptedOut,
			ErrorCode:      r.Contacts.ErrorCode,
			Tags:           r.Contacts.Tags,
			SuppressedTags: r.Contacts.SuppressedTags,
		},
		MessageText: r.MessageText,
	}
}

type searchReq struct {
	Cursor      *paginator.Cursor `json:"cursor,omitempty"`
	Filter      filterReq         `json:"filter"`
	IncludeTags bool              `json:"include_tags"`
}

func (r searchReq) toInput(orgID int64) conversation.GetConversationsInput {
	return conversation.GetConversationsInput{
		OrganizationID: orgID,
		Cursor:         r.Cursor,
		Filter:         r.Filter.toFilter(),
		IncludeTags:    r.IncludeTags,
	}
}

type bulkReassignReq struct {
	Filter          filterReq `json:"filter"`
	NewTexterUserID string    `json:"new_texter_user_id"`
}

func (r bulkReassignReq) toInput(orgID int64) conversation.BulkReassignInput {
	return conversation.BulkReassignInput{
		OrganizationID:  orgID,
		Filter:          r.Filter.toFilter(),
		NewTexterUserID: r.NewTexterUserID,
	}
}

type campaignContactIDsReq struct {
	CampaignID int64   `json:"campaign_id" binding:"required"`
	ContactIDs []int64 `json:"contact_ids" binding:"required"`
}

type reassignContactsReq struct {
	CampaignContactIDs []campaignContactIDsReq `json:"campaign_contact_ids" binding:"required,dive"`
	NewTexterUserID    string                  `json:"new_texter_user_id"`
}

func (r reassignContactsReq) toInput(orgID int64) conversation.ReassignInput {
	m := conversation.NewCampaignContactIDsMap()
	for _, cc := range r.CampaignContactIDs {
		for _, id := range cc.ContactIDs {
			m.Add(cc.CampaignID, id)
		}
	}
	return conversation.ReassignInput{
		OrganizationID:     orgID,
		CampaignContactIDs: m,
		NewTexterUserID:    r.NewTexterUserID,
	}
}

type texterResp struct {
	ID        *int64 `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role,omitempty"`
}

type contactResp struct {
	ID            int64      `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Cell          string     `json:"cell"`
	ErrorCode     *int64     `json:"error_code"`
	MessageStatus string     `json:"message_status"`
	IsOptedOut    bool       `json:"is_opted_out"`
	UpdatedAt     *time.Time `json:"updated_at"`
	AssignmentID  *int64     `json:"assignment_id"`
}

type campaignResp struct {
	ID    int64      `json:"id"`
	Title string     `json:"title"`
	DueBy *time.Time `json:"due_by"`
}

type messageResp struct {
	ID            int64     `json:"id"`
	Text          string    `json:"text"`
	UserNumber    string    `json:"user_number"`
	ContactNumber string    `json:"contact_number"`
	CreatedAt     time.Time `json:"created_at"`
	IsFromContact bool      `json:"is_from_contact"`
}

type tagResp struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Value *string `json:"value"`
}

type conversationResp struct {
	OrganizationID int64         `json:"organization_id"`
	Contact        contactResp   `json:"contact"`
	Texter         texterResp    `json:"texter"`
	Campaign       campaignResp  `json:"campaign"`
	Messages       []messageResp `json:"messages"`
	Tags           []tagResp     `json:"tags,omitempty"`
}

type pageInfoResp struct {
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	Total      int64 `json:"total"`
	TotalKnown bool  `json:"total_known"`
}

type searchResp struct {
	Conversations []conversationResp `json:"conversations"`
	PageInfo      pageInfoResp       `json:"page_info"`
}

func newPageInfoResp(p paginator.PageInfo) pageInfoResp {
	return pageInfoResp{
		Limit:      p.Limit,
		Offset:     p.Offset,
		Total:      p.Total,
		TotalKnown: p.IsTotalKnown(),
	}
}

type reassignResultResp struct {
	CampaignID   int64  `json:"campaign_id"`
	AssignmentID *int64 `json:"assignment_id"`
}

type cacheFailureResp struct {
	ContactID  int64  `json:"contact_id"`
	CampaignID int64  `json:"campaign_id"`
	Error      string `json:"error"`
}

type reassignResp struct {
	Results       []reassignResultResp `json:"results"`
	CacheFailures []cacheFailureResp   `json:"cache_failures,omitempty"`
	Error         string               `json:"error,omitempty"`
}

func (h *handler) newConversationResp(c model.Conversation) (conversationResp, error) {
	contact, err := c.Contact()
	if err != nil {
		return conversationResp{}, err
	}
	texter, err := c.Texter()
	if err != nil {
		return conversationResp{}, err
	}
	campaign, err := c.Campaign()
	if err != nil {
		return conversationResp{}, err
	}

	resp := conversationResp{
		OrganizationID: c.OrganizationID,
		Contact: contactResp{
			ID:            contact.ID,
			FirstName:     contact.FirstName,
			LastName:      contact.LastName,
			Cell:          contact.Cell,
			ErrorCode:     contact.ErrorCode,
			MessageStatus: contact.MessageStatus,
			IsOptedOut:    contact.IsOptedOut,
			UpdatedAt:     contact.UpdatedAt,
			AssignmentID:  contact.AssignmentID,
		},
		Texter: texterResp{
			ID:        texter.ID,
			FirstName: texter.FirstName,
			LastName:  texter.LastName,
			Role:      texter.Role,
		},
		Campaign: campaignResp{
			ID:    campaign.ID,
			Title: campaign.Title,
			DueBy: campaign.DueBy,
		},
		Messages: make([]messageResp, len(c.Messages)),
	}
	for i, m := range c.Messages {
		resp.Messages[i] = messageResp{
			ID:            m.ID,
			Text:          m.Text,
			UserNumber:    m.UserNumber,
			ContactNumber: m.ContactNumber,
			CreatedAt:     m.CreatedAt,
			IsFromContact: m.IsFromContact,
		}
	}
	for _, t := range c.Tags {
		resp.Tags = append(resp.Tags, tagResp{ID: t.ID, Name: t.Name, Value: t.Value})
	}
	return resp, nil
}

func (h *handler) newSearchResp(o conversation.GetConversationsOutput) (searchResp, error) {
	resp := searchResp{
		Conversations: make([]conversationResp, len(o.Conversations)),
		PageInfo:      newPageInfoResp(o.PageInfo),
	}
	for i, c := range o.Conversations {
		cr, err := h.newConversationResp(c)
		if err != nil {
			return searchResp{}, fmt.Errorf("conversation %d: %w", c.ContactID(), err)
		}
		resp.Conversations[i] = cr
	}
	return resp, nil
}

func (h *handler) newReassignResp(o conversation.ReassignOutput) reassignResp {
	resp := reassignResp{
		Results: make([]reassignResultResp, len(o.Results)),
	}
	for i, r := range o.Results {
		resp.Results[i] = reassignResultResp{
			CampaignID:   r.CampaignID,
			AssignmentID: r.AssignmentID,
		}
	}
	for _, f := range o.CacheFailures {
		resp.CacheFailures = append(resp.CacheFailures, cacheFailureResp{
			ContactID:  f.ContactID,
			CampaignID: f.CampaignID,
			Error:      f.Err.Error(),
		})
	}
	if o.Err != nil {
		resp.Error = h.mapError(o.Err).Error()
	}
	return resp
}
