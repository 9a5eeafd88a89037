package http

import (
	"task-intake-service/internal/intake"
	"task-intake-service/pkg/response"
)

// --- Request DTOs ---

// parseReq is the body of POST /parse_task.
// TaskText is a pointer so that "" passes `required` while an absent field does not.
type parseReq struct {
	TaskText *string `json:"task_text" binding:"required"`
}

func (r parseReq) toInput() intake.ParseInput {
	return intake.ParseInput{Text: *r.TaskText}
}

// --- Response DTOs ---

type parsedTaskResp struct {
	Title    string            `json:"title"`
	Deadline response.DateTime `json:"deadline" swaggertype:"string" example:"2023-12-31T23:59:00"`
	Priority string            `json:"priority" example:"medium"`
}

type parseResp struct {
	OriginalText string         `json:"original_text"`
	ParsedTask   parsedTaskResp `json:"parsed_task"`
}

func (h *handler) newParseResp(out intake.ParseOutput) parseResp {
	return parseResp{
		OriginalText: out.OriginalText,
		ParsedTask: parsedTaskResp{
			Title:    out.Task.Title,
			Deadline: response.DateTime(out.Task.Deadline),
			Priority: out.Task.Priority.String(),
		},
	}
}
