package refresh

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// RandomFunc returns the random component of a refresh token. It can be overridden in tests.
var RandomFunc = uuid.NewString

const tokenPrefix = "refresh_"

// Manager creates opaque refresh tokens. Tokens are not stored and cannot be redeemed.
type Manager struct{}

// NewManager creates a new refresh token manager
func NewManager() *Manager {
	return &Manager{}
}

// Create returns base64("refresh_<clientID>_<unix millis>_<random>")
func (m *Manager) Create(clientID string) string {
	raw := fmt.Sprintf("%s%s_%d_%s", tokenPrefix, clientID, NowTimeFunc().UnixMilli(), RandomFunc())
	return base64.StdEncoding.EncodeToString([]byte(raw))
}
