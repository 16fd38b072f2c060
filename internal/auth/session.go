// Package auth holds the signed-in session. Token issuance and signature
// verification belong to the backend; the client only decodes the claims
// it needs: who the user is and when the token lapses.
package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformedToken indicates the access token could not be decoded.
	ErrMalformedToken = errors.New("malformed access token")
	// ErrNoSubject indicates the token carries no user id.
	ErrNoSubject = errors.New("access token has no subject")
	// ErrNoSession indicates no user is signed in.
	ErrNoSession = errors.New("no active session")
)

// Session identifies the signed-in user for the lifetime of one token.
type Session struct {
	UserID    string
	Token     string
	ExpiresAt time.Time
}

// Expired reports whether the token has lapsed. Tokens without an expiry
// claim never expire client-side.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// ParseToken decodes a backend-issued access token without verifying its
// signature and extracts the session identity.
func ParseToken(token string) (*Session, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, ErrMalformedToken
	}
	if claims.Subject == "" {
		return nil, ErrNoSubject
	}

	session := &Session{UserID: claims.Subject, Token: token}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}

// Manager holds the current session behind a lock so the engine and the
// CLI surface can read it concurrently.
type Manager struct {
	mu      sync.RWMutex
	current *Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{}
}

// SignIn parses the token and installs the resulting session.
func (m *Manager) SignIn(token string) (*Session, error) {
	session, err := ParseToken(token)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.current = session
	m.mu.Unlock()
	return session, nil
}

// SignOut clears the session.
func (m *Manager) SignOut() {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
}

// Current returns the active session, or ErrNoSession when signed out or
// expired.
func (m *Manager) Current() (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil || m.current.Expired(time.Now()) {
		return nil, ErrNoSession
	}
	return m.current, nil
}
