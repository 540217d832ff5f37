// Package session holds the authenticated user's tokens, persists them
// across process restarts, and renders them as cookies with remember-me
// dependent lifetimes.
package session

import (
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/finview-dev/finview/internal/model"
)

// Cookie names. Access and refresh tokens are HTTP-only; the client token
// is a readable mirror of the access token for attaching Authorization
// headers, and the logged-in marker lets unauthenticated chrome render
// without token access.
const (
	CookieAccessToken  = "access_token"
	CookieRefreshToken = "refresh_token"
	CookieClientToken  = "client_access_token"
	CookieLoggedIn     = "logged_in"
)

// Token lifetimes. Remember-me trades security for convenience: a month of
// access and two of refresh, versus an hour and a week.
const (
	AccessTTLRemember  = 30 * 24 * time.Hour
	AccessTTLShort     = time.Hour
	RefreshTTLRemember = 60 * 24 * time.Hour
	RefreshTTLShort    = 7 * 24 * time.Hour
)

// State is the persisted session: who is logged in and with which tokens.
type State struct {
	User         model.User `yaml:"user"`
	AccessToken  string     `yaml:"access_token"`
	RefreshToken string     `yaml:"refresh_token"`
	RememberMe   bool       `yaml:"remember_me"`
}

// Session is a concurrency-safe holder for the current State. It satisfies
// the API client's token source.
type Session struct {
	mu    sync.RWMutex
	state State
}

// AccessToken returns the current bearer token, empty when logged out.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.AccessToken
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Set replaces the session state.
func (s *Session) Set(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// Reset drops the session state.
func (s *Session) Reset() {
	s.Set(State{})
}

// LoggedIn reports whether a user is authenticated.
func (s *Session) LoggedIn() bool {
	return s.AccessToken() != ""
}

// Lifetimes returns the access and refresh token lifetimes for a
// remember-me choice.
func Lifetimes(rememberMe bool) (access, refresh time.Duration) {
	if rememberMe {
		return AccessTTLRemember, RefreshTTLRemember
	}
	return AccessTTLShort, RefreshTTLShort
}

// Cookies renders the session as its four cookies.
func (s *Session) Cookies(secure bool) []*http.Cookie {
	st := s.State()
	access, refresh := Lifetimes(st.RememberMe)

	return []*http.Cookie{
		{
			Name:     CookieAccessToken,
			Value:    st.AccessToken,
			Path:     "/",
			MaxAge:   int(access.Seconds()),
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		},
		{
			Name:     CookieRefreshToken,
			Value:    st.RefreshToken,
			Path:     "/",
			MaxAge:   int(refresh.Seconds()),
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		},
		{
			Name:     CookieClientToken,
			Value:    st.AccessToken,
			Path:     "/",
			MaxAge:   int(access.Seconds()),
			HttpOnly: false,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		},
		// The marker lives as long as the refresh token: a session that can
		// still be refreshed is still logged in.
		{
			Name:     CookieLoggedIn,
			Value:    "true",
			Path:     "/",
			MaxAge:   int(refresh.Seconds()),
			HttpOnly: false,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		},
	}
}

// ClearCookies returns the four cookies expired, for logout.
func ClearCookies() []*http.Cookie {
	names := []string{CookieAccessToken, CookieRefreshToken, CookieClientToken, CookieLoggedIn}
	out := make([]*http.Cookie, 0, len(names))
	for _, name := range names {
		out = append(out, &http.Cookie{
			Name:   name,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
	}
	return out
}

// Load reads a session.yaml file from disk. A missing file is an empty
// session, not an error.
func Load(path string) (*Session, error) {
	s := &Session{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading session: %w", err)
	}
	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing session: %w", err)
	}
	s.Set(st)
	return s, nil
}

// Save writes the session to a YAML file, readable only by the owner.
func Save(path string, s *Session) error {
	data, err := yaml.Marshal(s.State())
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}
