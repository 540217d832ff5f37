package api

import (
	"context"
	"net/http"

	"github.com/finview-dev/finview/internal/model"
)

// AuthService wraps the /auth endpoints.
type AuthService struct {
	c *Client
}

// LoginInput are user credentials. RememberMe selects the long-lived token
// lifetimes.
type LoginInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// RegisterInput creates a new user. Password confirmation is enforced by the
// form schema before this DTO is built.
type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// AuthResult carries the tokens issued on login/registration/refresh.
type AuthResult struct {
	User         model.User `json:"user"`
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
}

// Login exchanges credentials for tokens.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (AuthResult, error) {
	var out AuthResult
	if err := s.c.do(ctx, http.MethodPost, "/auth/login", nil, in, &out); err != nil {
		return AuthResult{}, err
	}
	return out, nil
}

// Register creates a user and logs them in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	var out AuthResult
	if err := s.c.do(ctx, http.MethodPost, "/auth/register", nil, in, &out); err != nil {
		return AuthResult{}, err
	}
	return out, nil
}

// Refresh exchanges a refresh token for a new token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (AuthResult, error) {
	body := map[string]string{"refreshToken": refreshToken}
	var out AuthResult
	if err := s.c.do(ctx, http.MethodPost, "/auth/refresh", nil, body, &out); err != nil {
		return AuthResult{}, err
	}
	return out, nil
}

// Logout revokes the current session server-side.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

// Me fetches the authenticated user.
func (s *AuthService) Me(ctx context.Context) (model.User, error) {
	var out model.User
	if err := s.c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return model.User{}, err
	}
	return out, nil
}
