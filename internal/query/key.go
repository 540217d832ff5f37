// Package query implements the client-side cache: hierarchical keys, a
// TTL'd in-memory store with prefix invalidation, subscriber notification,
// and per-key deduplication of in-flight fetches.
package query

import (
	"sort"
	"strings"
)

// Key is a hierarchical cache key, e.g. ["accounts", "list", "type=checking"].
// A key addresses the subtree of every key it prefixes.
type Key []string

// String renders the key for use as a map index.
func (k Key) String() string {
	return strings.Join(k, "/")
}

// HasPrefix reports whether p addresses k (segment-wise prefix match).
func (k Key) HasPrefix(p Key) bool {
	if len(p) > len(k) {
		return false
	}
	for i, seg := range p {
		if k[i] != seg {
			return false
		}
	}
	return true
}

// Equal reports segment-wise equality.
func (k Key) Equal(other Key) bool {
	return len(k) == len(other) && k.HasPrefix(other)
}

// Registry builds the conventional key hierarchy for one resource:
// [resource] -> [resource list] -> [resource list <filter>] and
// [resource detail <id>], plus resource-specific leaves via Sub.
type Registry struct {
	resource string
}

// NewRegistry creates a key registry for a resource name.
func NewRegistry(resource string) Registry {
	return Registry{resource: resource}
}

// All addresses every cached read for the resource.
func (r Registry) All() Key { return Key{r.resource} }

// Lists addresses every cached list, regardless of filter.
func (r Registry) Lists() Key { return Key{r.resource, "list"} }

// List addresses one filtered list. An empty filter segment is the
// unfiltered list.
func (r Registry) List(filter string) Key {
	if filter == "" {
		return Key{r.resource, "list", "all"}
	}
	return Key{r.resource, "list", filter}
}

// Details addresses every cached detail.
func (r Registry) Details() Key { return Key{r.resource, "detail"} }

// Detail addresses one record by id.
func (r Registry) Detail(id string) Key { return Key{r.resource, "detail", id} }

// Sub addresses a resource-specific leaf, e.g. Sub("alerts").
func (r Registry) Sub(parts ...string) Key {
	return append(Key{r.resource}, parts...)
}

// Per-resource registries. Cross-resource invalidation in the mutation layer
// references these directly.
var (
	Accounts      = NewRegistry("accounts")
	Categories    = NewRegistry("categories")
	Merchants     = NewRegistry("merchants")
	Budgets       = NewRegistry("budgets")
	Bills         = NewRegistry("bills")
	Goals         = NewRegistry("goals")
	Notifications = NewRegistry("notifications")
	Transactions  = NewRegistry("transactions")
	Analytics     = NewRegistry("analytics")
)

// EncodeFilter canonicalizes filter fields into a key segment. Empty values
// are dropped and keys are sorted, so semantically equal filters always
// produce the identical segment regardless of construction order.
func EncodeFilter(fields map[string]string) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k, v := range fields {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(fields[k])
	}
	return b.String()
}
