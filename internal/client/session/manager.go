// Package session owns authentication state: who is logged in, durable
// persistence of that fact across process restarts, and the route guard
// built on top of it.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/ahmchowd27/safesnap-client/internal/client/models"
	"github.com/ahmchowd27/safesnap-client/internal/client/repositories/metadata"
	"github.com/ahmchowd27/safesnap-client/internal/dbx"
	"github.com/ahmchowd27/safesnap-client/internal/logging"
)

// Storage keys for the two halves of a persisted session. Both are written
// and removed together; a lone survivor is treated as corrupt.
const (
	keyToken = "token"
	keyUser  = "user"
)

type Session struct {
	Token string
	User  models.Identity
}

// Manager is the single writer of session state. Readers (the gateway's
// token source, the route guard, the CLI prompt) go through its accessors.
type Manager struct {
	db  *sql.DB
	log logging.Logger

	mu      sync.RWMutex
	current *Session
}

func NewManager(db *sql.DB, log logging.Logger) *Manager {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Manager{db: db, log: log}
}

// Restore loads the persisted session on startup. It fails closed: if either
// entry is missing, the user blob does not parse, or the parsed identity is
// incomplete, both entries are purged and the manager stays unauthenticated.
// Corrupt data is a diagnostic, never an error to the caller.
func (m *Manager) Restore(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	repo := metadata.NewSQLiteRepository(m.db)

	token, err := repo.Get(ctx, keyToken)
	if err != nil {
		m.log.Warn(ctx, "session restore: token read failed", "err", err)
		m.purgeLocked(ctx)
		return false
	}
	blob, err := repo.Get(ctx, keyUser)
	if err != nil {
		m.log.Warn(ctx, "session restore: user read failed", "err", err)
		m.purgeLocked(ctx)
		return false
	}

	if len(token) == 0 || len(blob) == 0 {
		if len(token) != 0 || len(blob) != 0 {
			m.log.Debug(ctx, "session restore: partial session discarded")
			m.purgeLocked(ctx)
		}
		return false
	}

	var identity models.Identity
	if err := json.Unmarshal(blob, &identity); err != nil {
		m.log.Debug(ctx, "session restore: user blob does not parse", "err", err)
		m.purgeLocked(ctx)
		return false
	}
	if err := identity.Validate(); err != nil {
		m.log.Debug(ctx, "session restore: incomplete identity discarded", "err", err)
		m.purgeLocked(ctx)
		return false
	}

	m.current = &Session{Token: string(token), User: identity}
	return true
}

// Login persists the supplied credentials and makes them the current
// session. No network call happens here; the auth service has already
// obtained the token. Both entries are written in one transaction so a crash
// cannot leave a partial pair behind.
func (m *Manager) Login(ctx context.Context, token string, identity models.Identity) error {
	if token == "" {
		return errors.New("login: empty token")
	}
	if err := identity.Validate(); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	blob, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("login: serialize identity: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	err = dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUser, blob)
	})
	if err != nil {
		return fmt.Errorf("login: persist session: %w", err)
	}

	m.current = &Session{Token: token, User: identity}
	return nil
}

// Logout clears both the persisted and in-memory session unconditionally.
// Safe to call when already logged out.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = nil

	repo := metadata.NewSQLiteRepository(m.db)
	if err := repo.Delete(ctx, keyToken); err != nil {
		return err
	}
	return repo.Delete(ctx, keyUser)
}

// Current returns a copy of the in-memory session, if any.
func (m *Manager) Current() (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return Session{}, false
	}
	return *m.current, true
}

// Token implements the gateway's TokenSource. Empty when logged out.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return ""
	}
	return m.current.Token
}

// IsAuthenticated reports whether there is an in-memory session AND the
// persisted token still exists. The second check guards against the store
// being wiped externally without Logout being called.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return false
	}

	repo := metadata.NewSQLiteRepository(m.db)
	token, err := repo.Get(ctx, keyToken)
	if err != nil {
		m.log.Warn(ctx, "session check: token read failed", "err", err)
		return false
	}
	return len(token) > 0
}

// purgeLocked removes both persisted entries and drops the in-memory
// session. Callers hold m.mu.
func (m *Manager) purgeLocked(ctx context.Context) {
	m.current = nil

	repo := metadata.NewSQLiteRepository(m.db)
	if err := repo.Delete(ctx, keyToken); err != nil {
		m.log.Warn(ctx, "session purge: token delete failed", "err", err)
	}
	if err := repo.Delete(ctx, keyUser); err != nil {
		m.log.Warn(ctx, "session purge: user delete failed", "err", err)
	}
}
