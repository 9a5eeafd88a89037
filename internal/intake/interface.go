package intake

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Parse turns a line of free text into a ParsedTask.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)
}
