package http

import (
	"conversation-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/organizations/:organization_id")
	api.Use(mw.RequestID())
	{
		api.POST("/conversations/search", h.SearchConversations)
		api.POST("/conversations/reassign", h.BulkReassign)
		api.POST("/conversations/reassign-contacts", h.ReassignContacts)
	}
}
