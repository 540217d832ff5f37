package apierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf_StatusBuckets(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   string
		want   Kind
	}{
		{"network zero status", 0, "", KindNetwork},
		{"network code", 500, "NETWORK_ERROR", KindNetwork},
		{"unauthorized", 401, "", KindAuth},
		{"forbidden", 403, "", KindAuth},
		{"bad request", 400, "", KindValidation},
		{"unprocessable", 422, "", KindValidation},
		{"not found", 404, "", KindNotFound},
		{"server error", 500, "", KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &Error{Message: "boom", Code: tt.code, Status: tt.status}
			assert.Equal(t, tt.want, KindOf(err))
		})
	}
}

func TestKindOf_PlainErrorIsNetwork(t *testing.T) {
	assert.Equal(t, KindNetwork, KindOf(errors.New("dial tcp: refused")))
}

func TestNewNetwork_WrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewNetwork(cause)

	require.ErrorIs(t, err, cause)
	e := From(err)
	require.NotNil(t, e, "connectivity failures must still yield the normalized shape")
	assert.Equal(t, 0, e.Status)
	assert.Equal(t, "NETWORK_ERROR", e.Code)
	assert.Equal(t, KindNetwork, KindOf(err))
}

func TestNewNetwork_SurvivesFurtherWrapping(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := fmt.Errorf("listing accounts: %w", NewNetwork(cause))

	require.ErrorIs(t, err, cause)
	e := From(err)
	require.NotNil(t, e)
	assert.Equal(t, 0, e.Status)
}

func TestFrom_WrappedError(t *testing.T) {
	inner := &Error{Message: "nope", Status: 404}
	err := fmt.Errorf("deleting bill: %w", inner)
	assert.Same(t, inner, From(err))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&Error{Message: "gone", Status: 404}))
	assert.True(t, IsNotFound(&Error{Message: "account not found", Status: 409}))
	assert.True(t, IsNotFound(&Error{Message: "x", Code: "GOAL_NOT_FOUND", Status: 409}))
	assert.False(t, IsNotFound(&Error{Message: "bad", Status: 400}))
	assert.False(t, IsNotFound(nil))
}

func TestIsTranslationKey(t *testing.T) {
	assert.True(t, IsTranslationKey("errors.accounts.duplicateName"))
	assert.True(t, IsTranslationKey("errors.auth.invalid.credentials"))
	assert.False(t, IsTranslationKey("errors.accounts"))
	assert.False(t, IsTranslationKey("Something went wrong"))
	assert.False(t, IsTranslationKey("errors. bad. key"))
	assert.False(t, IsTranslationKey("errors..empty"))
}

func TestUserMessage(t *testing.T) {
	t.Run("network", func(t *testing.T) {
		msg := UserMessage(NewNetwork(errors.New("timeout")))
		assert.Contains(t, msg, "connection")
	})

	t.Run("auth suppressed", func(t *testing.T) {
		assert.Empty(t, UserMessage(&Error{Message: "token expired", Status: 401}))
	})

	t.Run("translation key passes through", func(t *testing.T) {
		err := &Error{Message: "errors.budgets.limitExceeded", Status: 409}
		assert.Equal(t, "errors.budgets.limitExceeded", UserMessage(err))
	})

	t.Run("curated balance message", func(t *testing.T) {
		err := &Error{Message: "x", Code: "INSUFFICIENT_BALANCE", Status: 409}
		assert.Contains(t, UserMessage(err), "balance")
	})

	t.Run("validation joins field messages", func(t *testing.T) {
		err := &Error{
			Message:  "validation failed",
			Messages: []string{"name is required", "amount must be positive"},
			Status:   422,
		}
		assert.Equal(t, "name is required; amount must be positive", UserMessage(err))
	})

	t.Run("fallback to raw server message", func(t *testing.T) {
		err := &Error{Message: "weird backend state", Status: 500}
		assert.Equal(t, "weird backend state", UserMessage(err))
	})
}
