package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "task-intake-service/pkg/errors"
)

// OK sends 200 JSON with data as the whole body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error answers err as a {"detail": ...} body.
// Validation errors map to 422, HTTP errors to their code, anything else to 500.
func Error(c *gin.Context, err error) {
	status, body := errorBody(err)
	c.JSON(status, body)
}

// AbortWithError is Error for middleware: it also stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	status, body := errorBody(err)
	c.AbortWithStatusJSON(status, body)
}

func errorBody(err error) (int, ErrorResp) {
	var vErr *pkgErrors.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusUnprocessableEntity, ErrorResp{Detail: vErr.Details}
	}

	var hErr *pkgErrors.HTTPError
	if errors.As(err, &hErr) {
		return hErr.Code, ErrorResp{Detail: hErr.Message}
	}

	return http.StatusInternalServerError, ErrorResp{Detail: DefaultErrorMessage}
}
