package auth_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jrsteele09/go-token-endpoint/auth"
	"github.com/jrsteele09/go-token-endpoint/internal/config"
	"github.com/jrsteele09/go-token-endpoint/oauth2"
	"github.com/jrsteele09/go-token-endpoint/oauthmodel"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTokenService(buf *bytes.Buffer) *auth.TokenService {
	return auth.NewTokenService(config.New(), auth.WithLogger(zerolog.New(buf)))
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		lines = append(lines, entry)
	}
	return lines
}

func TestTokenService_Token(t *testing.T) {
	t.Run("issues code as bearer token", func(t *testing.T) {
		var buf bytes.Buffer
		resp, err := newTokenService(&buf).Token(&oauthmodel.TokenRequest{
			GrantType: "authorization_code",
			Code:      "abcdefghij",
		})
		require.NoError(t, err)
		require.Equal(t, "abcdefghij", resp.AccessToken)
		require.Equal(t, oauth2.BearerTokenType, resp.TokenType)
		require.Equal(t, 3600, resp.ExpiresIn)
		require.Equal(t, "read write", resp.Scope)
		require.Nil(t, resp.RefreshToken)
	})

	t.Run("refresh token when client id supplied", func(t *testing.T) {
		var buf bytes.Buffer
		ts := newTokenService(&buf)
		req := &oauthmodel.TokenRequest{GrantType: "authorization_code", Code: "abcdefghij", ClientID: "client1"}

		first, err := ts.Token(req)
		require.NoError(t, err)
		second, err := ts.Token(req)
		require.NoError(t, err)

		require.NotNil(t, first.RefreshToken)
		require.NotNil(t, second.RefreshToken)
		require.NotEqual(t, *first.RefreshToken, *second.RefreshToken)

		decoded, err := base64.StdEncoding.DecodeString(*first.RefreshToken)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(string(decoded), "refresh_client1_"))
	})

	t.Run("logs request summary and success", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := newTokenService(&buf).Token(&oauthmodel.TokenRequest{
			GrantType:    "authorization_code",
			Code:         "abcdefghijklmnop",
			ClientID:     "client1",
			ClientSecret: "do-not-log",
			RedirectURI:  "https://app.example.com/cb",
		})
		require.NoError(t, err)

		require.NotContains(t, buf.String(), "do-not-log")
		require.NotContains(t, buf.String(), "abcdefghijklmnop")

		lines := logLines(t, &buf)
		require.Len(t, lines, 2)
		require.Equal(t, "Token request received", lines[0]["message"])
		require.Equal(t, "abcdefghij...", lines[0]["code"])
		require.Equal(t, "authorization_code", lines[0]["grant_type"])
		require.Equal(t, "https://app.example.com/cb", lines[0]["redirect_uri"])
		require.Equal(t, "Token issued successfully", lines[1]["message"])
		require.Equal(t, "client1", lines[1]["client_id"])
	})

	t.Run("short code is logged then rejected", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := newTokenService(&buf).Token(&oauthmodel.TokenRequest{GrantType: "authorization_code", Code: "short"})
		requireOAuthError(t, err, "invalid_grant", "Invalid authorization code")

		lines := logLines(t, &buf)
		require.Len(t, lines, 1)
		require.Equal(t, "short...", lines[0]["code"])
	})

	t.Run("shape failures are not logged", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := newTokenService(&buf).Token(&oauthmodel.TokenRequest{GrantType: "authorization_code"})
		requireOAuthError(t, err, "invalid_request", "Missing code parameter")
		require.Empty(t, buf.String())
	})
}
