// Package services contains application services for the foodprint client.
// This file defines the session manager: it holds who is currently signed
// in and implements the remember-me contract that decides whether a session
// survives a process restart.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/foodprint-app/foodprint/internal/client/api"
	"github.com/foodprint-app/foodprint/internal/client/models"
	"github.com/foodprint-app/foodprint/internal/client/repositories/session"
	"github.com/foodprint-app/foodprint/internal/dbx"
)

// PersistMode is the remember-me decision made once at login. It governs
// whether the session is mirrored into durable storage.
type PersistMode string

const (
	// Ephemeral sessions live in memory only and leave no durable trace.
	Ephemeral PersistMode = "ephemeral"
	// Persisted sessions are written to durable storage and restored on the
	// next start.
	Persisted PersistMode = "persisted"
)

// Durable storage keys. User, token and remember marker are written and
// cleared together as a unit.
const (
	keyUser     = "foodprint_user"
	keyToken    = "foodprint_token"
	keyRemember = "foodprint_remember"
)

const rememberMarker = "true"

// SessionManager is the client-side record of "who is currently signed in".
//
// Contract:
//   - Restore: load a remembered session from durable storage at startup.
//   - Login: authenticate and, per the persist mode, mirror the session
//     durably. Failures collapse to false; LastError carries the typed
//     cause for callers that want to refine messaging.
//   - Register: create an account on the server; session state is untouched.
//   - UpdateUser: replace the in-memory user, keeping any durable copy in
//     sync without re-deriving the remember decision.
//   - Logout: clear in-memory state and every durable trace, whether or not
//     the session was persisted.
type SessionManager interface {
	Restore(ctx context.Context) error
	Login(ctx context.Context, username, password string, mode PersistMode) bool
	Register(ctx context.Context, input api.RegisterInput) bool
	UpdateUser(ctx context.Context, user *models.User) error
	Logout(ctx context.Context) error

	IsAuthenticated() bool
	CurrentUser() *models.User
	Token() string
	LastError() error
}

// sessionManager is the concrete SessionManager backed by a remote Client
// and a local SQL database for durable session data.
type sessionManager struct {
	client api.Client
	db     *sql.DB

	user          *models.User
	token         string
	authenticated bool
	lastErr       error
}

// NewSessionManager constructs a SessionManager bound to the given API
// client and DB. The session starts empty; call Restore to pick up a
// remembered one.
func NewSessionManager(client api.Client, db *sql.DB) SessionManager {
	return &sessionManager{client: client, db: db}
}

func (m *sessionManager) getSessionRepo(db dbx.DBTX) session.Repository {
	return session.NewSQLiteRepository(db)
}

// Restore loads a remembered session from durable storage. The remember
// marker is the gate: when it is absent, the session starts empty and any
// stray stored data is not read. Restoration trusts the stored token without
// re-validating it against the server; callers that want a server check can
// follow up with a profile fetch.
func (m *sessionManager) Restore(ctx context.Context) error {
	repo := m.getSessionRepo(m.db)

	marker, err := repo.Get(ctx, keyRemember)
	if err != nil {
		return err
	}
	if string(marker) != rememberMarker {
		return nil
	}

	storedUser, err := repo.Get(ctx, keyUser)
	if err != nil {
		return err
	}
	storedToken, err := repo.Get(ctx, keyToken)
	if err != nil {
		return err
	}
	if storedUser == nil || storedToken == nil {
		return nil
	}

	user := &models.User{}
	if err := json.Unmarshal(storedUser, user); err != nil {
		// unreadable stored session: treat the restoration as failed and
		// start empty
		return nil
	}

	m.user = user
	m.token = string(storedToken)
	m.authenticated = true
	return nil
}

// Login authenticates against the server. All failures — bad credentials and
// unreachable server alike — surface as false; the typed cause is kept in
// LastError.
func (m *sessionManager) Login(ctx context.Context, username, password string, mode PersistMode) bool {
	if err := m.login(ctx, username, password, mode); err != nil {
		m.lastErr = err
		return false
	}
	m.lastErr = nil
	return true
}

func (m *sessionManager) login(ctx context.Context, username, password string, mode PersistMode) error {
	// stale traces of a previous session are cleared before the network
	// call, so a new ephemeral session can never mix with an old persisted
	// one
	if err := m.getSessionRepo(m.db).Clear(ctx); err != nil {
		return fmt.Errorf("clearing stale session: %w", err)
	}

	token, user, err := m.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	m.user = user
	m.token = token
	m.authenticated = true

	if mode == Persisted {
		if err := m.saveSession(ctx, user, token); err != nil {
			// a half-written remembered session is worse than none
			m.clearMemory()
			return fmt.Errorf("persisting session: %w", err)
		}
	}

	return nil
}

// saveSession mirrors the session into durable storage in a single
// transaction: user, token and remember marker land together or not at all.
func (m *sessionManager) saveSession(ctx context.Context, user *models.User, token string) error {
	encoded, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := m.getSessionRepo(tx)
		if err := repo.Set(ctx, keyUser, encoded); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyRemember, []byte(rememberMarker))
	})
}

// Register forwards to the server. It never touches session state; a fresh
// account still has to log in.
func (m *sessionManager) Register(ctx context.Context, input api.RegisterInput) bool {
	if err := m.client.Register(ctx, input); err != nil {
		m.lastErr = err
		return false
	}
	m.lastErr = nil
	return true
}

// UpdateUser replaces the in-memory user. When a remember marker is set, the
// durable copy is overwritten too, keeping it consistent without
// re-deriving the remember decision.
func (m *sessionManager) UpdateUser(ctx context.Context, user *models.User) error {
	m.user = user

	repo := m.getSessionRepo(m.db)

	marker, err := repo.Get(ctx, keyRemember)
	if err != nil {
		return err
	}
	if string(marker) != rememberMarker {
		return nil
	}

	encoded, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return repo.Set(ctx, keyUser, encoded)
}

// Logout clears the in-memory session and every durable trace,
// unconditionally.
func (m *sessionManager) Logout(ctx context.Context) error {
	m.clearMemory()
	return m.getSessionRepo(m.db).Clear(ctx)
}

func (m *sessionManager) clearMemory() {
	m.user = nil
	m.token = ""
	m.authenticated = false
}

func (m *sessionManager) IsAuthenticated() bool { return m.authenticated }

func (m *sessionManager) CurrentUser() *models.User { return m.user }

func (m *sessionManager) Token() string { return m.token }

// LastError reports the typed cause of the most recent failed Login or
// Register, e.g. api.ErrUnauthorized vs api.ErrUnavailable. It is nil after
// a success.
func (m *sessionManager) LastError() error { return m.lastErr }
