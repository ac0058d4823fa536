package session

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

// Manager issues and validates opaque, expiring admin session tokens. The
// client stores only the token; whether it grants access is decided here,
// never by a flag on the client.
type Manager struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		tokens: make(map[string]time.Time),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue mints a fresh token valid for the configured TTL.
func (m *Manager) Issue() (string, error) {
	token, err := randomToken()
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	m.tokens[token] = m.now().Add(m.ttl)
	m.mu.Unlock()
	return token, nil
}

// Validate reports whether the token is known and unexpired. Expired
// tokens are dropped on sight.
func (m *Manager) Validate(token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	expiry, ok := m.tokens[token]
	if !ok {
		return false
	}
	if m.now().After(expiry) {
		delete(m.tokens, token)
		return false
	}
	return true
}

// Revoke drops the token; revoking an unknown token is a no-op.
func (m *Manager) Revoke(token string) {
	m.mu.Lock()
	delete(m.tokens, token)
	m.mu.Unlock()
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
