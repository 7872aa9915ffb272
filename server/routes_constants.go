package server

// Route path constants
const (
	// OAuth2 Routes
	RouteOAuth2Token = "/oauth2/token"
	RouteToken       = "/token" // alias for clients configured with a bare /token endpoint

	// Utility Routes
	RouteHello = "/hello"
)
