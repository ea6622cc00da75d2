package http

import (
	"conversation-srv/internal/conversation"
	"conversation-srv/internal/middleware"
	"conversation-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the conversation HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc conversation.UseCase
}

// New - Factory
func New(l log.Logger, uc conversation.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
