package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "github.com/jrsteele09/go-token-endpoint/internal/errors"
	"github.com/jrsteele09/go-token-endpoint/oauthmodel"
	"github.com/rs/zerolog"
)

type helloRequest struct {
	Name string `json:"name"`
}

type helloResponse struct {
	Message string `json:"message"`
}

// Hello greets the name posted in the JSON body
func (s *Server) Hello() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req helloRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, oauthmodel.MaxBodyBytes)).Decode(&req); err != nil {
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("Hello: failed to decode body")
			writeOAuthError(w, apperrors.NewServerError())
			return
		}
		writeJSON(w, http.StatusOK, helloResponse{Message: fmt.Sprintf("Hello %s!", req.Name)})
	}
}
