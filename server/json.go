package server

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/jrsteele09/go-token-endpoint/internal/errors"
	"github.com/rs/zerolog/log"
)

const contentTypeJSON = "application/json"

// writeJSON writes data as a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Err(err).Msg("Failed to encode JSON response")
	}
}

// writeOAuthError writes an OAuth2 error response
func writeOAuthError(w http.ResponseWriter, oauthErr *apperrors.OAuthError) {
	writeJSON(w, oauthErr.StatusCode, oauthErr)
}
