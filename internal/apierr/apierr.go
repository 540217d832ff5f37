// Package apierr defines the normalized error shape for everything crossing
// the backend HTTP boundary, and the classification rules callers use to
// decide how a failure is presented.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is the normalized failure shape for API calls. Status 0 means the
// request never produced an HTTP response (connectivity failure); for those
// the transport error is carried as the cause and reachable via errors.Is.
type Error struct {
	Message  string   `json:"message"`
	Messages []string `json:"messages,omitempty"` // per-field or per-row detail
	Code     string   `json:"code,omitempty"`
	Status   int      `json:"status"`

	cause error
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (code %s, status %d)", e.Message, e.Code, e.Status)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// Kind buckets errors for presentation.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindAuth
	KindValidation
	KindNotFound
)

// NewNetwork returns the normalized error for a request that never reached
// the server, carrying the transport error as its cause.
func NewNetwork(cause error) error {
	return &Error{
		Message: "network error",
		Code:    "NETWORK_ERROR",
		Status:  0,
		cause:   cause,
	}
}

// From extracts the normalized *Error from err, or nil if err carries none.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// KindOf classifies err. Non-API errors are treated as network failures
// since they never produced a server response.
func KindOf(err error) Kind {
	e := From(err)
	if e == nil {
		if err != nil {
			return KindNetwork
		}
		return KindUnknown
	}
	switch {
	case e.Status == 0 || e.Code == "NETWORK_ERROR":
		return KindNetwork
	case e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden:
		return KindAuth
	case e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity:
		return KindValidation
	case e.Status == http.StatusNotFound:
		return KindNotFound
	}
	return KindUnknown
}

// IsNotFound reports whether err represents a missing resource, either by
// status or by a "not found" style code/message.
func IsNotFound(err error) bool {
	if KindOf(err) == KindNotFound {
		return true
	}
	e := From(err)
	if e == nil {
		return false
	}
	return containsFold(e.Code, "not_found") || containsFold(e.Message, "not found")
}

// IsTranslationKey reports whether s is a localization key of the form
// "errors.<domain>.<reason>". Anything else is a literal message.
func IsTranslationKey(s string) bool {
	if !strings.HasPrefix(s, "errors.") {
		return false
	}
	parts := strings.Split(s, ".")
	if len(parts) < 3 {
		return false
	}
	for _, p := range parts {
		if p == "" || strings.ContainsRune(p, ' ') {
			return false
		}
	}
	return true
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
