package http

import (
	"github.com/gin-gonic/gin"

	"task-intake-service/pkg/response"
)

// ParseTask godoc
// @Summary     Parse a task
// @Description Turns a line of free text into a structured task. Deadline and priority are placeholders.
// @Tags        Intake
// @Accept      json
// @Produce     json
// @Param       body body     parseReq  true "Task text"
// @Success     200  {object} parseResp
// @Failure     422  {object} response.ErrorResp "Validation Error"
// @Failure     500  {object} response.ErrorResp "Internal Server Error"
// @Router      /parse_task [POST]
func (h *handler) ParseTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		h.l.Debugf(ctx, "intake.http.ParseTask: %v", err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(ctx, err))
		return
	}

	response.OK(c, h.newParseResp(output))
}
