package middleware

import (
	"github.com/gin-gonic/gin"

	pkgErrors "task-intake-service/pkg/errors"
	"task-intake-service/pkg/response"
)

// Recovery turns a handler panic into a logged 500.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, rec any) {
		m.l.Errorf(c.Request.Context(), "middleware.Recovery: panic: %v", rec)
		response.AbortWithError(c, pkgErrors.ErrInternalServerError)
	})
}
