package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows browser clients from the configured origins. An empty list or "*" allows any origin.
func (m Middleware) CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", HeaderRequestID},
		ExposeHeaders: []string{HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}

	if m.AllowsAnyOrigin() {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = m.cfg.AllowedOrigins
	}

	return cors.New(cfg)
}

// AllowsAnyOrigin reports whether CORS accepts every origin.
func (m Middleware) AllowsAnyOrigin() bool {
	if len(m.cfg.AllowedOrigins) == 0 {
		return true
	}
	for _, o := range m.cfg.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

// AllowedOrigins returns the origins CORS accepts; ["*"] when any origin is allowed.
func (m Middleware) AllowedOrigins() []string {
	if m.AllowsAnyOrigin() {
		return []string{"*"}
	}
	return m.cfg.AllowedOrigins
}
