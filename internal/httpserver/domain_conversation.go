package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"conversation-srv/internal/conversation"
	conversationHTTP "conversation-srv/internal/conversation/delivery/http"
	conversationProducer "conversation-srv/internal/conversation/delivery/kafka/producer"
	conversationPostgre "conversation-srv/internal/conversation/repository/postgre"
	conversationRedis "conversation-srv/internal/conversation/repository/redis"
	conversationUsecase "conversation-srv/internal/conversation/usecase"
	"conversation-srv/internal/middleware"
)

func (srv HTTPServer) setupConversationDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := conversationPostgre.New(srv.postgresDB, srv.readDB, srv.l)
	cacheRepo := conversationRedis.New(srv.redisClient, srv.l)

	// A nil interface, not a nil *implProducer, keeps publishing disabled.
	var producer conversation.Producer
	if srv.kafkaProducer != nil {
		producer = conversationProducer.New(srv.l, srv.kafkaProducer)
	}

	uc := conversationUsecase.New(srv.l, repo, cacheRepo, producer, conversationUsecase.Config{
		Recent:               srv.config.Conversations.Recent,
		CountTimeout:         srv.config.Conversations.CountTimeout,
		MaxContactsPerTexter: srv.config.MaxContactsPerTexter,
		CacheConcurrency:     srv.config.Conversations.CacheConcurrency,
	})

	handler := conversationHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Conversation domain registered (events enabled: %t)", producer != nil)
	return nil
}
