package auth

import (
	"time"
	"unicode/utf8"

	"github.com/jrsteele09/go-token-endpoint/internal/config"
	"github.com/jrsteele09/go-token-endpoint/internal/utils"
	"github.com/jrsteele09/go-token-endpoint/oauth2"
	"github.com/jrsteele09/go-token-endpoint/oauthmodel"
	"github.com/jrsteele09/go-token-endpoint/token/refresh"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TokenService simulates the authorization_code exchange: the submitted code
// is handed back as the access token.
type TokenService struct {
	validator *Validator
	refresh   *refresh.Manager
	config    config.OAuthConfig
	logger    zerolog.Logger
}

// TokenServiceOption defines a function type to modify the TokenService instance.
type TokenServiceOption func(*TokenService)

// WithLogger replaces the global logger (primarily for testing)
func WithLogger(logger zerolog.Logger) TokenServiceOption {
	return func(ts *TokenService) {
		ts.logger = logger
	}
}

func NewTokenService(cfg config.OAuthConfig, opts ...TokenServiceOption) *TokenService {
	ts := &TokenService{
		validator: NewValidator(cfg.GetMinCodeLength()),
		refresh:   refresh.NewManager(),
		config:    cfg,
		logger:    log.Logger,
	}
	for _, opt := range opts {
		opt(ts)
	}
	return ts
}

// Token exchanges an authorization code for a token response.
// Errors are *errors.OAuthError values describing the first failed check.
func (ts *TokenService) Token(req *oauthmodel.TokenRequest) (*oauth2.TokenResponse, error) {
	if err := ts.validator.ValidateTokenRequest(req); err != nil {
		return nil, err
	}

	ts.logger.Info().
		Str("grant_type", req.GrantType).
		Str("code", ts.truncateCode(req.Code)).
		Str("client_id", req.ClientID).
		Str("redirect_uri", req.RedirectURI).
		Msg("Token request received")

	if err := ts.validator.ValidateAuthorizationCode(req.Code); err != nil {
		return nil, err
	}

	resp := &oauth2.TokenResponse{
		AccessToken: req.Code,
		TokenType:   oauth2.BearerTokenType,
		ExpiresIn:   int(ts.config.GetAccessTokenExpiry() / time.Second),
		Scope:       ts.config.GetDefaultScope(),
	}
	if req.ClientID != "" {
		resp.RefreshToken = utils.Ptr(ts.refresh.Create(req.ClientID))
	}

	ts.logger.Info().Str("client_id", req.ClientID).Msg("Token issued successfully")
	return resp, nil
}

// truncateCode keeps the first few characters of a code followed by "..."
func (ts *TokenService) truncateCode(code string) string {
	n := ts.config.GetCodeLogPrefixLength()
	if utf8.RuneCountInString(code) > n {
		code = string([]rune(code)[:n])
	}
	return code + "..."
}
