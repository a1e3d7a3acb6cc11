package session

import (
	"context"

	"github.com/alexedwards/scs/v2"

	"bookshelf-backend/internal/config"
)

// Store is the per-user session scope the session-backed repositories are
// built on. All methods operate on the session loaded into the request
// context by the LoadAndSave middleware.
type Store interface {
	// Get returns the value stored under key, or nil if absent.
	Get(ctx context.Context, key string) interface{}

	// Set stores value under key. The session is persisted when the
	// response is committed.
	Set(ctx context.Context, key string, value interface{})

	// Remove deletes key from the session. Removing an absent key is a
	// no-op.
	Remove(ctx context.Context, key string)
}

// NewManager creates a configured scs session manager backed by the
// built-in in-memory store. Sessions are keyed per end-user via the
// session cookie.
func NewManager(cfg config.SessionConfig) *scs.SessionManager {
	sm := scs.New()

	sm.Lifetime = cfg.Lifetime
	sm.IdleTimeout = cfg.Lifetime / 2

	sm.Cookie.Name = cfg.CookieName
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.Path = "/"

	return sm
}

type scsStore struct {
	sm *scs.SessionManager
}

// NewStore wraps an scs session manager behind the Store interface.
func NewStore(sm *scs.SessionManager) Store {
	return &scsStore{sm: sm}
}

func (s *scsStore) Get(ctx context.Context, key string) interface{} {
	return s.sm.Get(ctx, key)
}

func (s *scsStore) Set(ctx context.Context, key string, value interface{}) {
	s.sm.Put(ctx, key, value)
}

func (s *scsStore) Remove(ctx context.Context, key string) {
	s.sm.Remove(ctx, key)
}
