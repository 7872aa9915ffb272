package server

import (
	"net/http"

	apperrors "github.com/jrsteele09/go-token-endpoint/internal/errors"
	"github.com/jrsteele09/go-token-endpoint/oauthmodel"
	"github.com/rs/zerolog"
)

// Token exchanges an authorization code for tokens
func (s *Server) Token() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeOAuthError(w, apperrors.NewMethodNotAllowed())
			return
		}

		tokenReq, err := oauthmodel.ParseTokenRequest(r)
		if err != nil {
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("Token endpoint error")
			writeOAuthError(w, apperrors.NewServerError())
			return
		}

		tokenResponse, err := s.tokens.Token(tokenReq)
		if err != nil {
			oauthErr := apperrors.FromError(err)
			if oauthErr.StatusCode >= http.StatusInternalServerError {
				zerolog.Ctx(r.Context()).Error().Err(err).Msg("Token endpoint error")
			}
			writeOAuthError(w, oauthErr)
			return
		}

		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Pragma", "no-cache")
		writeJSON(w, http.StatusOK, tokenResponse)
	}
}
