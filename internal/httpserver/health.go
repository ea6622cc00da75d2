package httpserver

import (
	"net/http"

	"conversation-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "conversation-srv"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests (Postgres + Redis, Kafka when enabled).
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is down"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := srv.postgresDB.PingContext(ctx); err != nil {
		srv.notReady(c, "Database connection failed", err)
		return
	}
	if srv.readDB != srv.postgresDB {
		if err := srv.readDB.PingContext(ctx); err != nil {
			srv.notReady(c, "Read replica connection failed", err)
			return
		}
	}
	if err := srv.redisClient.Ping(ctx); err != nil {
		srv.notReady(c, "Redis connection failed", err)
		return
	}

	kafkaStatus := "disabled"
	if srv.kafkaProducer != nil {
		if err := srv.kafkaProducer.HealthCheck(); err != nil {
			srv.notReady(c, "Kafka producer unhealthy", err)
			return
		}
		kafkaStatus = "connected"
	}

	response.OK(c, gin.H{
		"status":   "ready",
		"version":  HealthVersion,
		"service":  ServiceName,
		"database": "connected",
		"redis":    "connected",
		"kafka":    kafkaStatus,
	})
}

func (srv HTTPServer) notReady(c *gin.Context, message string, err error) {
	srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: %s: %v", message, err)
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"status":  "not ready",
		"message": message,
		"error":   err.Error(),
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
