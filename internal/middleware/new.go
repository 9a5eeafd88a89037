package middleware

import (
	pkgLog "task-intake-service/pkg/log"
)

// Config holds the tunables of the middleware chain.
type Config struct {
	AllowedOrigins  []string
	RateLimitPerMin int
}

type Middleware struct {
	l       pkgLog.Logger
	cfg     Config
	limiter *rateLimiter
}

func New(l pkgLog.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:   l,
		cfg: cfg,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
