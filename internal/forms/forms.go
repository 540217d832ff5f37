// Package forms validates raw user input into the typed DTOs the API
// services accept. Validation is pure and structural: each schema returns
// the normalized DTO plus a field-keyed error map, and the DTO is only
// meaningful when the map is empty. Unexpected errors are never swallowed
// into field errors; schemas only report what the user can fix.
package forms

import (
	"strings"
	"time"
)

// Errors maps field names to user-facing validation messages.
type Errors map[string]string

// Valid reports whether validation passed.
func (e Errors) Valid() bool { return len(e) == 0 }

func (e Errors) add(field, msg string) {
	if _, dup := e[field]; !dup {
		e[field] = msg
	}
}

const dateLayout = "2006-01-02"

// ParseDate parses a form date value.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	return t, err == nil
}

func validEmail(s string) bool {
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t")
}
