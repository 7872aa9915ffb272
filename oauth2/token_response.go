package oauth2

// TokenResponse represents the response from an OAuth2 token request.
// Returned from the token endpoint on a successful authorization_code exchange.
type TokenResponse struct {
	// AccessToken is the credential used to access protected resources.
	// Here it is the authorization code that was exchanged, unmodified.
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer".
	TokenType TokenType `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token.
	ExpiresIn int `json:"expires_in"`

	// Scope is the space-separated list of granted permissions.
	Scope string `json:"scope"`

	// RefreshToken is an opaque token, only present when the request named a client_id.
	RefreshToken *string `json:"refresh_token,omitempty"`
}
