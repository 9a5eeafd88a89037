package usecase

import (
	"context"

	"task-intake-service/internal/intake"
)

// Parse builds a ParsedTask from the input text.
// The title is the text verbatim; deadline and priority are fixed placeholders.
func (uc *implUseCase) Parse(ctx context.Context, input intake.ParseInput) (intake.ParseOutput, error) {
	uc.l.Debugf(ctx, "uc.Parse: text_len=%d", len(input.Text))

	return intake.ParseOutput{
		OriginalText: input.Text,
		Task: intake.ParsedTask{
			Title:    input.Text,
			Deadline: uc.deadline,
			Priority: uc.priority,
		},
	}, nil
}
