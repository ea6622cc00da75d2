package middleware

import (
	"runtime/debug"

	"conversation-srv/pkg/log"
	"conversation-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 response and logs it with the stack.
// Handlers panic on errors they have no mapping for.
func Recovery(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			logger.Errorf(c.Request.Context(), "middleware.Recovery: %s %s: %v\n%s",
				c.Request.Method, c.Request.URL.Path, rec, debug.Stack())

			response.PanicError(c, rec)
			c.Abort()
		}()
		c.Next()
	}
}
