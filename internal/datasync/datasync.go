// Package datasync binds the API service clients to the query cache: reads
// become gated, deduplicated queries; writes become mutations that apply a
// fixed per-resource invalidation set so subscribed readers refetch exactly
// what a write could have changed.
package datasync

import (
	"context"
	"net/url"
	"time"

	"github.com/finview-dev/finview/internal/apierr"
	"github.com/finview-dev/finview/internal/datasync/actionlog"
	"github.com/finview-dev/finview/internal/log"
	"github.com/finview-dev/finview/internal/query"
)

// Status is the observable state of a read.
type Status int

const (
	// StatusIdle means the query's gate is closed: a required input is
	// missing and no request was issued.
	StatusIdle Status = iota
	StatusSuccess
	StatusError
)

// Result carries a read's data alongside its status.
type Result[T any] struct {
	Data   T
	Status Status
	Err    error
}

// Notifier surfaces mutation failures to the user. The CLI implementation
// logs; a UI would toast.
type Notifier interface {
	Error(title, message string)
}

type logNotifier struct {
	log *log.Logger
}

func (n logNotifier) Error(title, message string) {
	n.log.Error(title, "message", message)
}

// Sync coordinates queries and mutations over one cache store.
type Sync struct {
	svc      Services
	store    *query.Store
	notifier Notifier
	actions  *actionlog.Log
	logger   *log.Logger
}

// Option configures a Sync.
type Option func(*Sync)

// WithNotifier overrides failure presentation.
func WithNotifier(n Notifier) Option {
	return func(s *Sync) { s.notifier = n }
}

// WithActionLog records every mutation outcome to a local CSV log.
func WithActionLog(l *actionlog.Log) Option {
	return func(s *Sync) { s.actions = l }
}

// New creates a Sync over a set of services and one store.
func New(svc Services, store *query.Store, logger *log.Logger, opts ...Option) *Sync {
	s := &Sync{
		svc:    svc,
		store:  store,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = logNotifier{log: logger}
	}
	return s
}

// Store exposes the underlying cache, mainly for lifecycle calls
// (Clear on logout) and subscriptions.
func (s *Sync) Store() *query.Store { return s.store }

// read runs a gated, cached fetch. A false gate returns StatusIdle without
// touching the service.
func read[T any](ctx context.Context, s *Sync, key query.Key, enabled bool, fetch func(context.Context) (T, error)) Result[T] {
	var zero T
	if !enabled {
		return Result[T]{Data: zero, Status: StatusIdle}
	}

	v, err := s.store.Fetch(ctx, key, func() (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return Result[T]{Data: zero, Status: StatusError, Err: err}
	}
	return Result[T]{Data: v.(T), Status: StatusSuccess}
}

// keySet is the cache effect of a successful mutation: prefixes to
// invalidate and exact keys to remove.
type keySet struct {
	invalidate []query.Key
	remove     []query.Key
}

// mutate runs a write and, on success only, applies the key set derived from
// its output. Failures always produce an observable side effect: a notifier
// call (except auth failures, which the session flow handles) and an
// action-log row.
func mutate[T any](ctx context.Context, s *Sync, resource, action, title string,
	run func(context.Context) (T, error),
	keys func(out T) keySet) (T, error) {

	out, err := run(ctx)
	if err != nil {
		if apierr.KindOf(err) != apierr.KindAuth {
			s.notifier.Error(title, apierr.UserMessage(err))
		}
		s.record(resource, action, "failure", err.Error())
		var zero T
		return zero, err
	}

	ks := keys(out)
	for _, k := range ks.invalidate {
		s.store.Invalidate(k)
	}
	for _, k := range ks.remove {
		s.store.Remove(k)
	}
	s.record(resource, action, "success", "")
	return out, nil
}

func (s *Sync) record(resource, action, outcome, detail string) {
	if s.actions == nil {
		return
	}
	err := s.actions.Append([]actionlog.Entry{{
		Timestamp: time.Now().UTC(),
		Resource:  resource,
		Action:    action,
		Outcome:   outcome,
		Detail:    detail,
	}})
	if err != nil {
		s.logger.Warn("action log append failed", "error", err)
	}
}

// segment canonicalizes filter query values into a cache key segment. Values
// pass through EncodeFilter so construction order never changes the key.
func segment(v url.Values) string {
	m := make(map[string]string, len(v))
	for k, vs := range v {
		if len(vs) > 0 {
			m[k] = vs[0]
		}
	}
	return query.EncodeFilter(m)
}
