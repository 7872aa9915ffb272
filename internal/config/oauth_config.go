package config

import "time"

// OAuthConfig holds the fixed policy of the token endpoint.
type OAuthConfig interface {
	GetAccessTokenExpiry() time.Duration
	GetDefaultScope() string
	GetMinCodeLength() int
	GetCodeLogPrefixLength() int
}

type OAuth struct{}

var _ OAuthConfig = OAuth{}

func (OAuth) GetAccessTokenExpiry() time.Duration {
	return 1 * time.Hour
}

func (OAuth) GetDefaultScope() string {
	return "read write"
}

// GetMinCodeLength is the shortest authorization code accepted, in characters
func (OAuth) GetMinCodeLength() int {
	return 10
}

// GetCodeLogPrefixLength is how many characters of a code may appear in logs
func (OAuth) GetCodeLogPrefixLength() int {
	return 10
}
