package httpserver

import (
	"context"

	"conversation-srv/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (srv HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.setupConversationDomain(ctx, &srv.gin.RouterGroup, mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(middleware.Metrics())
	if srv.mode != gin.ReleaseMode {
		srv.gin.Use(gin.Logger())
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Prometheus metrics
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
