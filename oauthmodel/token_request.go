package oauthmodel

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/jrsteele09/go-token-endpoint/internal/errors"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// MaxBodyBytes bounds how much of a request body is read.
const MaxBodyBytes = 1 << 20

// TokenRequest holds parameters for the OAuth2 token request.
// It is decoded from either a JSON body or a form-encoded body using the same
// field names. An empty value means the parameter was not supplied.
type TokenRequest struct {
	// GrantType identifies the exchange flow.
	// Required: Yes, must be "authorization_code"
	GrantType string `json:"grant_type"`

	// Code is the authorization code received from the authorization endpoint.
	// Required: Yes
	Code string `json:"code"`

	// RedirectURI is accepted but not checked.
	RedirectURI string `json:"redirect_uri,omitempty"`

	// ClientID identifies the client. When present a refresh token is issued.
	ClientID string `json:"client_id,omitempty"`

	// ClientSecret is accepted but never verified.
	// Security: Never log or expose this value
	ClientSecret string `json:"client_secret,omitempty"`

	// CodeVerifier is the PKCE verifier, accepted but not checked.
	CodeVerifier string `json:"code_verifier,omitempty"`
}

// ParseTokenRequest builds a TokenRequest from the request body according to
// its Content-Type. Unsupported content types and undecodable bodies are
// returned as errors.
func ParseTokenRequest(r *http.Request) (*TokenRequest, error) {
	contentType := strings.ToLower(r.Header.Get("Content-Type"))
	switch {
	case strings.Contains(contentType, ContentTypeJSON):
		return parseJSON(r)
	case strings.Contains(contentType, ContentTypeForm):
		return parseForm(r)
	default:
		return nil, apperrors.Wrapf(apperrors.ErrUnsupportedContentType, "[ParseTokenRequest] %q", contentType)
	}
}

// parseJSON requires the whole body to be a single JSON object.
func parseJSON(r *http.Request) (*TokenRequest, error) {
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("[parseJSON] %w: %w", ErrMalformedBody, err)
	}
	var req *TokenRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("[parseJSON] %w: %w", ErrMalformedBody, err)
	}
	if req == nil {
		return nil, fmt.Errorf("[parseJSON] %w: null body", ErrMalformedBody)
	}
	return req, nil
}

func parseForm(r *http.Request) (*TokenRequest, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, MaxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("[parseForm] %w: %w", ErrMalformedBody, err)
	}
	return &TokenRequest{
		GrantType:    r.PostFormValue("grant_type"),
		Code:         r.PostFormValue("code"),
		RedirectURI:  r.PostFormValue("redirect_uri"),
		ClientID:     r.PostFormValue("client_id"),
		ClientSecret: r.PostFormValue("client_secret"),
		CodeVerifier: r.PostFormValue("code_verifier"),
	}, nil
}
