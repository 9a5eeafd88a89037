package usecase

import (
	"time"

	"task-intake-service/internal/intake"
	pkgLog "task-intake-service/pkg/log"
)

// implUseCase is the private implementation of intake.UseCase.
type implUseCase struct {
	l        pkgLog.Logger
	deadline time.Time
	priority intake.Priority
}

// New creates a new intake UseCase implementation.
func New(l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		l:        l,
		deadline: intake.DefaultDeadline,
		priority: intake.DefaultPriority,
	}
}
