package http

import (
	"conversation-srv/pkg/util"

	"github.com/gin-gonic/gin"
)

func (h *handler) processOrganizationID(c *gin.Context) (int64, error) {
	id, err := util.ParseID(c.Param("organization_id"))
	if err != nil {
		return 0, errInvalidOrganizationID
	}
	return id, nil
}

func (h *handler) processSearchRequest(c *gin.Context) (searchReq, int64, error) {
	var req searchReq

	orgID, err := h.processOrganizationID(c)
	if err != nil {
		return req, 0, err
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, 0, err
	}

	if req.Cursor != nil {
		req.Cursor.Adjust()
	}
	return req, orgID, nil
}

func (h *handler) processBulkReassignRequest(c *gin.Context) (bulkReassignReq, int64, error) {
	var req bulkReassignReq

	orgID, err := h.processOrganizationID(c)
	if err != nil {
		return req, 0, err
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, 0, err
	}
	return req, orgID, nil
}

func (h *handler) processReassignContactsRequest(c *gin.Context) (reassignContactsReq, int64, error) {
	var req reassignContactsReq

	orgID, err := h.processOrganizationID(c)
	if err != nil {
		return req, 0, err
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, 0, err
	}
	return req, orgID, nil
}
