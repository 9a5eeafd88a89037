package http

import (
	"context"
	"errors"

	pkgErrors "task-intake-service/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(ctx context.Context, err error) error {
	var vErr *pkgErrors.ValidationError
	if errors.As(err, &vErr) {
		return vErr
	}

	h.l.Errorf(ctx, "intake.http.mapError: unmapped error: %v", err)
	return pkgErrors.ErrInternalServerError
}
