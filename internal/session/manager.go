package session

import (
	"context"
	"fmt"
	"os"

	"github.com/finview-dev/finview/internal/api"
	"github.com/finview-dev/finview/internal/log"
	"github.com/finview-dev/finview/internal/model"
	"github.com/finview-dev/finview/internal/query"
)

// AuthAPI is the slice of the API the manager drives.
type AuthAPI interface {
	Login(ctx context.Context, in api.LoginInput) (api.AuthResult, error)
	Register(ctx context.Context, in api.RegisterInput) (api.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (api.AuthResult, error)
	Logout(ctx context.Context) error
}

// Manager runs the login/logout lifecycle: it exchanges credentials for
// tokens, persists the session file, and empties the query cache when the
// user changes.
type Manager struct {
	auth    AuthAPI
	session *Session
	store   *query.Store
	path    string
	logger  *log.Logger
}

// NewManager creates a Manager persisting to path.
func NewManager(auth AuthAPI, session *Session, store *query.Store, path string, logger *log.Logger) *Manager {
	return &Manager{
		auth:    auth,
		session: session,
		store:   store,
		path:    path,
		logger:  logger,
	}
}

// Session returns the managed session.
func (m *Manager) Session() *Session { return m.session }

// Login exchanges credentials for tokens and persists them. Any cached data
// from a previous user is dropped first.
func (m *Manager) Login(ctx context.Context, in api.LoginInput) (model.User, error) {
	res, err := m.auth.Login(ctx, in)
	if err != nil {
		return model.User{}, err
	}

	m.store.Clear()
	m.session.Set(State{
		User:         res.User,
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		RememberMe:   in.RememberMe,
	})
	if err := Save(m.path, m.session); err != nil {
		m.logger.Warn("session save failed", "error", err)
	}
	m.logger.Info("logged in", "email", res.User.Email)
	return res.User, nil
}

// Register creates an account and logs the new user in. Registration never
// remembers the session; the user opts in on their next login.
func (m *Manager) Register(ctx context.Context, in api.RegisterInput) (model.User, error) {
	res, err := m.auth.Register(ctx, in)
	if err != nil {
		return model.User{}, err
	}

	m.store.Clear()
	m.session.Set(State{
		User:         res.User,
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
	})
	if err := Save(m.path, m.session); err != nil {
		m.logger.Warn("session save failed", "error", err)
	}
	return res.User, nil
}

// Refresh trades the refresh token for a new token pair, keeping the
// remember-me choice.
func (m *Manager) Refresh(ctx context.Context) error {
	st := m.session.State()
	if st.RefreshToken == "" {
		return fmt.Errorf("no session to refresh")
	}

	res, err := m.auth.Refresh(ctx, st.RefreshToken)
	if err != nil {
		return err
	}

	st.User = res.User
	st.AccessToken = res.AccessToken
	st.RefreshToken = res.RefreshToken
	m.session.Set(st)
	if err := Save(m.path, m.session); err != nil {
		m.logger.Warn("session save failed", "error", err)
	}
	return nil
}

// Logout revokes the session server-side, then drops tokens, the session
// file, and every cached query. The local teardown runs even when the
// server call fails; a token the server has lost track of is still a token
// we must stop using.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.auth.Logout(ctx)
	if err != nil {
		m.logger.Warn("server logout failed", "error", err)
	}

	m.session.Reset()
	m.store.Clear()
	if rmErr := os.Remove(m.path); rmErr != nil && !os.IsNotExist(rmErr) {
		m.logger.Warn("session file remove failed", "error", rmErr)
	}
	return err
}
