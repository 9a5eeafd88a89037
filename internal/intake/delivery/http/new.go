package http

import (
	"github.com/gin-gonic/gin"

	"task-intake-service/internal/intake"
	pkgLog "task-intake-service/pkg/log"
)

// Handler is the public interface for the intake HTTP delivery layer.
type Handler interface {
	ParseTask(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc intake.UseCase
}

// New creates a new HTTP handler for the intake domain.
func New(l pkgLog.Logger, uc intake.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
