package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "task-intake-service/pkg/errors"
	"task-intake-service/pkg/response"
)

func TestResponses(t *testing.T) {
	// Setup Gin test mode
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, map[string]string{"message": "hi"})

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}
		if w.Body.String() != `{"message":"hi"}` {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("Validation Error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		err := pkgErrors.NewValidationError(pkgErrors.BodyField("task_text", pkgErrors.TypeMissing, "Field required"))
		response.Error(c, fmt.Errorf("bind: %w", err))

		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected %d, got %d", http.StatusUnprocessableEntity, w.Code)
		}

		var resp struct {
			Detail []pkgErrors.FieldError `json:"detail"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if len(resp.Detail) != 1 || resp.Detail[0].Type != pkgErrors.TypeMissing {
			t.Errorf("unexpected detail: %+v", resp.Detail)
		}
	})

	t.Run("HTTP Error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, pkgErrors.ErrNotFound)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
		if w.Body.String() != `{"detail":"Not Found"}` {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("Unknown Error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, errors.New("db crash"))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
		if w.Body.String() != `{"detail":"Internal Server Error"}` {
			t.Errorf("internal message leaked: %s", w.Body.String())
		}
	})

	t.Run("AbortWithError", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.AbortWithError(c, pkgErrors.ErrTooManyRequests)

		if w.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429, got %d", w.Code)
		}
		if !c.IsAborted() {
			t.Errorf("expected context to be aborted")
		}
	})
}
