package http

import (
	"conversation-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Search conversations
// @Description Return a page of conversations matching the filter with their message threads
// @Tags Conversations
// @Accept json
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Param body body searchReq true "Search request"
// @Success 200 {object} searchResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/organizations/{organization_id}/conversations/search [post]
func (h *handler) SearchConversations(c *gin.Context) {
	ctx := c.Request.Context()

	req, orgID, err := h.processSearchRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "conversation.delivery.http.SearchConversations: processSearchRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.GetConversations(ctx, req.toInput(orgID))
	if err != nil {
		h.l.Errorf(ctx, "conversation.delivery.http.SearchConversations: usecase GetConversations failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	resp, err := h.newSearchResp(o)
	if err != nil {
		h.l.Errorf(ctx, "conversation.delivery.http.SearchConversations: newSearchResp failed: %v", err)
		response.Error(c, errProjectionFailed)
		return
	}

	response.OK(c, resp)
}

// @Summary Reassign conversations by filter
// @Description Reassign every contact matching the filter to a texter, or unassign them
// @Tags Conversations
// @Accept json
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Param body body bulkReassignReq true "Bulk reassign request"
// @Success 200 {object} reassignResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/organizations/{organization_id}/conversations/reassign [post]
func (h *handler) BulkReassign(c *gin.Context) {
	ctx := c.Request.Context()

	req, orgID, err := h.processBulkReassignRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "conversation.delivery.http.BulkReassign: processBulkReassignRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.BulkReassignConversations(ctx, req.toInput(orgID))
	if err != nil {
		h.l.Errorf(ctx, "conversation.delivery.http.BulkReassign: usecase BulkReassignConversations failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newReassignResp(o))
}

// @Summary Reassign explicit contacts
// @Description Reassign the listed contacts of each campaign to a texter, or unassign them
// @Tags Conversations
// @Accept json
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Param body body reassignContactsReq true "Reassign contacts request"
// @Success 200 {object} reassignResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/organizations/{organization_id}/conversations/reassign-contacts [post]
func (h *handler) ReassignContacts(c *gin.Context) {
	ctx := c.Request.Context()

	req, orgID, err := h.processReassignContactsRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "conversation.delivery.http.ReassignContacts: processReassignContactsRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.ReassignConversations(ctx, req.toInput(orgID))
	if err != nil {
		h.l.Errorf(ctx, "conversation.delivery.http.ReassignContacts: usecase ReassignConversations failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newReassignResp(o))
}
