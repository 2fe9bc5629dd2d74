// Package http exposes the identity orchestrator over HTTP.
package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/kiranakart/auth-service/internal/pkg/apperrors"
	"github.com/kiranakart/auth-service/internal/utils"
	"github.com/kiranakart/auth-service/services/auth"
)

// AuthHandler handles HTTP requests for the auth service
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// writeError maps the error taxonomy to response statuses. Validation
// and authority messages go out verbatim; network failures collapse to
// a generic retry-suggesting message.
func writeError(c echo.Context, err error) error {
	var ae *apperrors.Error
	if !errors.As(err, &ae) {
		return utils.InternalServerErrorResponse(c, "")
	}

	switch ae.Kind {
	case apperrors.KindValidation:
		return utils.BadRequestResponse(c, ae.Message)
	case apperrors.KindAuthorization:
		return utils.UnauthorizedResponse(c, ae.Message)
	case apperrors.KindAlreadyExists, apperrors.KindConflict:
		return utils.ConflictResponse(c, ae.Message)
	case apperrors.KindNetwork:
		return utils.ServiceUnavailableResponse(c, "Network error. Please check your connection and try again.")
	default:
		return utils.InternalServerErrorResponse(c, "")
	}
}
