package oauth2

// GrantType represents the OAuth 2.0 grant type used at the token endpoint.
type GrantType string

const (
	// AuthorizationCodeGrant exchanges an authorization code for tokens.
	// It is the only grant type this endpoint accepts.
	AuthorizationCodeGrant GrantType = "authorization_code"
)

// TokenType tells the client how to present the access token.
type TokenType string

const (
	// BearerTokenType is sent as "Authorization: Bearer <access_token>"
	BearerTokenType TokenType = "Bearer"
)
