package query

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Invalidator is the mutation layer's view of the cache.
type Invalidator interface {
	Invalidate(prefix Key)
	Remove(key Key)
}

type entry struct {
	data      any
	expiresAt time.Time // zero = never expires
}

// Store is the in-memory query cache for one session. It is process-wide
// for the life of the app and must be Clear()ed on logout so one user's
// data never leaks into the next session.
type Store struct {
	mu    sync.Mutex
	items map[string]entry
	subs  map[int]func(Key)
	nextS int
	ttl   time.Duration

	group singleflight.Group
}

// NewStore creates an empty store. ttl of 0 disables expiry.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		items: make(map[string]entry),
		subs:  make(map[int]func(Key)),
		ttl:   ttl,
	}
}

// Get returns the cached value under key, if present and fresh.
func (s *Store) Get(key Key) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[key.String()]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		delete(s.items, key.String())
		return nil, false
	}
	return e.data, true
}

// Set stores a value under key.
func (s *Store) Set(key Key, data any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := entry{data: data}
	if s.ttl > 0 {
		e.expiresAt = time.Now().Add(s.ttl)
	}
	s.items[key.String()] = e
}

// Fetch returns the cached value under key, or runs fetch to populate it.
// Concurrent calls for the same key share a single in-flight fetch. A caller
// whose context is cancelled stops waiting; the shared fetch itself is not
// aborted and its result is discarded for that caller.
func (s *Store) Fetch(ctx context.Context, key Key, fetch func() (any, error)) (any, error) {
	if v, ok := s.Get(key); ok {
		return v, nil
	}

	ch := s.group.DoChan(key.String(), func() (any, error) {
		v, err := fetch()
		if err != nil {
			return nil, err
		}
		s.Set(key, v)
		return v, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Invalidate drops every entry under prefix and notifies subscribers.
func (s *Store) Invalidate(prefix Key) {
	s.mu.Lock()
	for ks := range s.items {
		if Key(splitKey(ks)).HasPrefix(prefix) {
			delete(s.items, ks)
		}
	}
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(prefix)
	}
}

// Remove drops exactly one entry without touching the rest of its subtree.
func (s *Store) Remove(key Key) {
	s.mu.Lock()
	delete(s.items, key.String())
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(key)
	}
}

// Clear empties the store. Subscribers observe the empty root prefix,
// meaning everything they hold is stale.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = make(map[string]entry)
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(Key{})
	}
}

// Subscribe registers fn to be called with the invalidated prefix after any
// invalidation. Returns an unsubscribe func.
func (s *Store) Subscribe(fn func(Key)) func() {
	s.mu.Lock()
	id := s.nextS
	s.nextS++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Size returns the number of live entries.
func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store) snapshotSubs() []func(Key) {
	out := make([]func(Key), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func splitKey(ks string) []string {
	if ks == "" {
		return nil
	}
	var parts []string
	start := 0
	for i := 0; i < len(ks); i++ {
		if ks[i] == '/' {
			parts = append(parts, ks[start:i])
			start = i + 1
		}
	}
	return append(parts, ks[start:])
}
