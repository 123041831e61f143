package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/rs/zerolog"

	"lmsadmin/internal/model"
)

// storageKey is the fixed namespace the session record persists under, the
// only client-side state that survives a restart.
const storageKey = "lms-user"

// Store holds the authenticated user for the lifetime of the process and
// persists it across runs. Lifecycle is explicit: Init rehydrates at start,
// Set stores at login, Clear wipes at logout. Nothing else mutates it.
type Store struct {
	mu     sync.RWMutex
	path   string
	user   *model.UserSession
	logger zerolog.Logger
}

// NewStore builds a store persisting under dir. Call Init before use.
func NewStore(dir string, logger zerolog.Logger) *Store {
	return &Store{
		path:   filepath.Join(dir, storageKey+".json"),
		logger: logger.With().Str("service", "SessionStore").Logger(),
	}
}

// Init rehydrates the session from durable storage. A missing record means a
// signed-out state, not an error; an unreadable one is discarded with a
// warning.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.user = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading session file: %w", err)
	}

	var u model.UserSession
	if err := json.Unmarshal(raw, &u); err != nil {
		s.logger.Warn().Err(err).Msg("discarding corrupt session record")
		s.user = nil
		return nil
	}
	s.user = &u
	return nil
}

// Set stores the session, at login, and persists it.
func (s *Store) Set(u *model.UserSession) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing session file: %w", err)
	}
	s.user = u
	return nil
}

// Clear wipes the session, at logout, removing the persisted record.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}

// User returns the current session, nil when signed out.
func (s *Store) User() *model.UserSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token implements gateway.TokenSource. Signed out means no token.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Token
}

// Expired reports whether the stored token's exp claim has passed. The claim
// is read without signature verification; the remote remains the authority
// and this only spares a doomed request. Tokens without an exp claim never
// expire locally.
func (s *Store) Expired() bool {
	tok := s.Token()
	if tok == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(tok, claims); err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return time.Now().After(time.Unix(int64(exp), 0))
}
