package server_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	xoauth2 "golang.org/x/oauth2"

	"github.com/jrsteele09/go-token-endpoint/server"
	"github.com/stretchr/testify/require"
)

func newOAuth2Config(tokenURL string) *xoauth2.Config {
	return &xoauth2.Config{
		ClientID:     "client1",
		ClientSecret: "secret",
		RedirectURL:  "https://app.example.com/callback",
		Endpoint: xoauth2.Endpoint{
			TokenURL:  tokenURL,
			AuthStyle: xoauth2.AuthStyleInParams,
		},
	}
}

func TestExchange_OAuth2Client(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t))
	t.Cleanup(ts.Close)

	conf := newOAuth2Config(ts.URL + server.RouteOAuth2Token)

	t.Run("exchange succeeds", func(t *testing.T) {
		tok, err := conf.Exchange(context.Background(), "abcdefghij-code", xoauth2.VerifierOption("verifier"))
		require.NoError(t, err)
		require.Equal(t, "abcdefghij-code", tok.AccessToken)
		require.Equal(t, "Bearer", tok.Type())
		require.NotEmpty(t, tok.RefreshToken)
		require.Equal(t, "read write", tok.Extra("scope"))
		require.WithinDuration(t, time.Now().Add(time.Hour), tok.Expiry, time.Minute)
	})

	t.Run("short code is an invalid grant", func(t *testing.T) {
		_, err := conf.Exchange(context.Background(), "short")
		require.Error(t, err)
		var retrieveErr *xoauth2.RetrieveError
		require.ErrorAs(t, err, &retrieveErr)
		require.Equal(t, "invalid_grant", retrieveErr.ErrorCode)
		require.Equal(t, "Invalid authorization code", retrieveErr.ErrorDescription)
	})
}
