package intake

import "time"

// Priority is the urgency level of a parsed task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) String() string { return string(p) }

// --- Domain Model ---

// ParsedTask is the structured record extracted from free text.
type ParsedTask struct {
	Title    string
	Deadline time.Time
	Priority Priority
}

// --- UseCase Inputs ---

type ParseInput struct {
	Text string
}

// --- UseCase Outputs ---

type ParseOutput struct {
	OriginalText string
	Task         ParsedTask
}
