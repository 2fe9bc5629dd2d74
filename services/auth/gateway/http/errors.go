package gateway_http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kiranakart/auth-service/internal/pkg/apperrors"
	httpclient "github.com/kiranakart/auth-service/internal/pkg/http"
)

// authorityError is the error envelope the authority uses. Some
// endpoints put the text under "error", others under "message".
type authorityError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// classifyStatus turns a client error into an application error. A
// non-2xx status is an explicit authority answer: the body's error text
// wins, falling back to the endpoint default. Transport failures pass
// through already classified as network errors.
func classifyStatus(err error, fallback string) error {
	var statusErr *httpclient.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}

	msg := fallback
	var envelope authorityError
	if jsonErr := json.Unmarshal(statusErr.Body, &envelope); jsonErr == nil {
		if envelope.Error != "" {
			msg = envelope.Error
		} else if envelope.Message != "" {
			msg = envelope.Message
		}
	}

	switch statusErr.StatusCode {
	case http.StatusConflict:
		return apperrors.AlreadyExists(msg)
	case http.StatusBadRequest:
		return apperrors.Validation(msg)
	default:
		return apperrors.Authorization(msg)
	}
}
