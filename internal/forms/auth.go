package forms

import (
	"strings"

	"github.com/finview-dev/finview/internal/api"
)

// LoginForm is the raw login input.
type LoginForm struct {
	Email      string
	Password   string
	RememberMe bool
}

// Login validates a login form.
func Login(f LoginForm) (api.LoginInput, Errors) {
	errs := Errors{}
	email := strings.TrimSpace(f.Email)

	if email == "" {
		errs.add("email", "Email is required")
	} else if !validEmail(email) {
		errs.add("email", "Enter a valid email address")
	}
	if f.Password == "" {
		errs.add("password", "Password is required")
	}

	return api.LoginInput{
		Email:      email,
		Password:   f.Password,
		RememberMe: f.RememberMe,
	}, errs
}

// RegisterForm is the raw registration input.
type RegisterForm struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
}

// Register validates a registration form. The confirmation field exists
// only here; the DTO carries a single password.
func Register(f RegisterForm) (api.RegisterInput, Errors) {
	errs := Errors{}
	email := strings.TrimSpace(f.Email)

	if email == "" {
		errs.add("email", "Email is required")
	} else if !validEmail(email) {
		errs.add("email", "Enter a valid email address")
	}
	if len(f.Password) < 8 {
		errs.add("password", "Password must be at least 8 characters")
	}
	if f.Password != f.ConfirmPassword {
		errs.add("confirmPassword", "Passwords do not match")
	}

	return api.RegisterInput{
		Email:     email,
		Password:  f.Password,
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
	}, errs
}
