package session

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finview-dev/finview/internal/api"
	"github.com/finview-dev/finview/internal/log"
	"github.com/finview-dev/finview/internal/model"
	"github.com/finview-dev/finview/internal/query"
)

func cookieByName(t *testing.T, cookies []*http.Cookie, name string) *http.Cookie {
	t.Helper()
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not found", name)
	return nil
}

func TestCookieLifetimesRememberMe(t *testing.T) {
	s := &Session{}
	s.Set(State{AccessToken: "acc", RefreshToken: "ref", RememberMe: true})

	cookies := s.Cookies(true)
	require.Len(t, cookies, 4)

	assert.Equal(t, 30*24*60*60, cookieByName(t, cookies, CookieAccessToken).MaxAge)
	assert.Equal(t, 60*24*60*60, cookieByName(t, cookies, CookieRefreshToken).MaxAge)
	assert.Equal(t, 30*24*60*60, cookieByName(t, cookies, CookieClientToken).MaxAge)
	assert.Equal(t, 60*24*60*60, cookieByName(t, cookies, CookieLoggedIn).MaxAge)
}

func TestCookieLifetimesShortSession(t *testing.T) {
	s := &Session{}
	s.Set(State{AccessToken: "acc", RefreshToken: "ref"})

	cookies := s.Cookies(true)
	assert.Equal(t, 60*60, cookieByName(t, cookies, CookieAccessToken).MaxAge)
	assert.Equal(t, 7*24*60*60, cookieByName(t, cookies, CookieRefreshToken).MaxAge)
	assert.Equal(t, 7*24*60*60, cookieByName(t, cookies, CookieLoggedIn).MaxAge)
}

func TestCookieVisibility(t *testing.T) {
	s := &Session{}
	s.Set(State{AccessToken: "acc", RefreshToken: "ref"})

	cookies := s.Cookies(true)
	assert.True(t, cookieByName(t, cookies, CookieAccessToken).HttpOnly)
	assert.True(t, cookieByName(t, cookies, CookieRefreshToken).HttpOnly)
	assert.False(t, cookieByName(t, cookies, CookieClientToken).HttpOnly,
		"the mirror must be readable for Authorization headers")
	assert.False(t, cookieByName(t, cookies, CookieLoggedIn).HttpOnly)
	assert.Equal(t, "acc", cookieByName(t, cookies, CookieClientToken).Value)
}

func TestClearCookiesExpiresAllFour(t *testing.T) {
	cookies := ClearCookies()
	require.Len(t, cookies, 4)
	for _, c := range cookies {
		assert.Equal(t, -1, c.MaxAge, "cookie %q", c.Name)
		assert.Empty(t, c.Value)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")

	s := &Session{}
	s.Set(State{
		User:         model.User{ID: "u1", Email: "a@example.com"},
		AccessToken:  "acc",
		RefreshToken: "ref",
		RememberMe:   true,
	})
	require.NoError(t, Save(path, s))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s.State(), loaded.State())
	assert.True(t, loaded.LoggedIn())
}

func TestLoadMissingFileIsEmptySession(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.False(t, s.LoggedIn())
}

// fakeAuth scripts the auth endpoints.
type fakeAuth struct {
	loginFn  func(in api.LoginInput) (api.AuthResult, error)
	logoutFn func() error
}

func (f *fakeAuth) Login(_ context.Context, in api.LoginInput) (api.AuthResult, error) {
	if f.loginFn != nil {
		return f.loginFn(in)
	}
	return api.AuthResult{}, nil
}

func (f *fakeAuth) Register(context.Context, api.RegisterInput) (api.AuthResult, error) {
	return api.AuthResult{}, nil
}

func (f *fakeAuth) Refresh(context.Context, string) (api.AuthResult, error) {
	return api.AuthResult{}, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	if f.logoutFn != nil {
		return f.logoutFn()
	}
	return nil
}

func TestLoginStoresTokensAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	auth := &fakeAuth{
		loginFn: func(in api.LoginInput) (api.AuthResult, error) {
			return api.AuthResult{
				User:         model.User{ID: "u1", Email: in.Email},
				AccessToken:  "acc",
				RefreshToken: "ref",
			}, nil
		},
	}
	store := query.NewStore(0)
	m := NewManager(auth, &Session{}, store, path, log.Discard())

	user, err := m.Login(context.Background(), api.LoginInput{
		Email: "a@example.com", Password: "pw", RememberMe: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "acc", m.Session().AccessToken())
	assert.True(t, m.Session().State().RememberMe)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ref", loaded.State().RefreshToken)
}

func TestLogoutClearsEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	store := query.NewStore(0)
	store.Set(query.Accounts.List(""), []model.Account{{ID: "a1"}})

	s := &Session{}
	s.Set(State{AccessToken: "acc", RefreshToken: "ref"})
	require.NoError(t, Save(path, s))

	m := NewManager(&fakeAuth{}, s, store, path, log.Discard())
	require.NoError(t, m.Logout(context.Background()))

	assert.False(t, s.LoggedIn())
	assert.Equal(t, 0, store.Size(), "cached queries must not survive logout")
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestLogoutTearsDownLocallyOnServerError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	store := query.NewStore(0)
	s := &Session{}
	s.Set(State{AccessToken: "acc"})

	auth := &fakeAuth{logoutFn: func() error { return errors.New("server gone") }}
	m := NewManager(auth, s, store, path, log.Discard())

	err := m.Logout(context.Background())
	assert.Error(t, err)
	assert.False(t, s.LoggedIn(), "tokens are dropped even when revocation fails")
}
