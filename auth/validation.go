package auth

import (
	"unicode/utf16"

	apperrors "github.com/jrsteele09/go-token-endpoint/internal/errors"
	"github.com/jrsteele09/go-token-endpoint/oauth2"
	"github.com/jrsteele09/go-token-endpoint/oauthmodel"
)

// Validator holds the shape checks applied to a token request.
// There is no code store or client registry behind it: a code is accepted on
// its length alone.
type Validator struct {
	minCodeLength int
}

// NewValidator creates a Validator that rejects codes shorter than minCodeLength characters
func NewValidator(minCodeLength int) *Validator {
	return &Validator{minCodeLength: minCodeLength}
}

// ValidateTokenRequest checks the required parameters in order, returning the first failure.
func (v *Validator) ValidateTokenRequest(req *oauthmodel.TokenRequest) error {
	if req == nil || req.GrantType == "" {
		return apperrors.NewInvalidRequest("Missing grant_type parameter")
	}
	if oauth2.GrantType(req.GrantType) != oauth2.AuthorizationCodeGrant {
		return apperrors.NewUnsupportedGrantType("Only authorization_code grant type is supported")
	}
	if req.Code == "" {
		return apperrors.NewInvalidRequest("Missing code parameter")
	}
	return nil
}

// ValidateAuthorizationCode accepts any code of at least the configured length.
// Length is measured in UTF-16 code units, as browser clients count it.
func (v *Validator) ValidateAuthorizationCode(code string) error {
	if len(utf16.Encode([]rune(code))) < v.minCodeLength {
		return apperrors.NewInvalidGrant("Invalid authorization code")
	}
	return nil
}
