package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// OAuth2 error codes returned in the "error" field of a token endpoint response
const (
	CodeInvalidRequest       = "invalid_request"
	CodeUnsupportedGrantType = "unsupported_grant_type"
	CodeInvalidGrant         = "invalid_grant"
	CodeServerError          = "server_error"
)

var (
	ErrInvalidRequest       = errors.New("invalid request")
	ErrUnsupportedGrantType = errors.New("unsupported grant type")
	ErrInvalidGrant         = errors.New("invalid grant")
	ErrInternal             = errors.New("internal error")

	ErrUnsupportedContentType = errors.New("unsupported content type")
)

// OAuthError is an error that can be written to the client as
// {"error": Code, "error_description": Description} with StatusCode.
type OAuthError struct {
	Code        string `json:"error"`
	Description string `json:"error_description"`
	StatusCode  int    `json:"-"`
	kind        error
}

func (e *OAuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func (e *OAuthError) Unwrap() error {
	return e.kind
}

func NewInvalidRequest(description string) *OAuthError {
	return &OAuthError{Code: CodeInvalidRequest, Description: description, StatusCode: http.StatusBadRequest, kind: ErrInvalidRequest}
}

func NewMethodNotAllowed() *OAuthError {
	return &OAuthError{Code: CodeInvalidRequest, Description: "Only POST method is allowed", StatusCode: http.StatusMethodNotAllowed, kind: ErrInvalidRequest}
}

func NewUnsupportedGrantType(description string) *OAuthError {
	return &OAuthError{Code: CodeUnsupportedGrantType, Description: description, StatusCode: http.StatusBadRequest, kind: ErrUnsupportedGrantType}
}

func NewInvalidGrant(description string) *OAuthError {
	return &OAuthError{Code: CodeInvalidGrant, Description: description, StatusCode: http.StatusBadRequest, kind: ErrInvalidGrant}
}

func NewServerError() *OAuthError {
	return &OAuthError{Code: CodeServerError, Description: "Internal server error", StatusCode: http.StatusInternalServerError, kind: ErrInternal}
}

// FromError returns the OAuthError in err's chain, or a generic server_error
// so that unexpected failures never reach the client verbatim.
func FromError(err error) *OAuthError {
	var oauthErr *OAuthError
	if errors.As(err, &oauthErr) {
		return oauthErr
	}
	return NewServerError()
}

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
