package datasync

import (
	"context"

	"github.com/finview-dev/finview/internal/api"
	"github.com/finview-dev/finview/internal/apierr"
	"github.com/finview-dev/finview/internal/model"
	"github.com/finview-dev/finview/internal/query"
)

// MutationState tracks an optimistic write through its lifecycle. The cache
// is patched while the write is pending and either kept (committed) or
// restored (rolled back) once the server answers.
type MutationState int

const (
	MutationIdle MutationState = iota
	MutationPending
	MutationCommitted
	MutationRolledBack
)

// Notifications reads the filtered notification list.
func (s *Sync) Notifications(ctx context.Context, filter api.NotificationFilter) Result[[]model.Notification] {
	key := query.Notifications.List(segment(filter.Values()))
	return read(ctx, s, key, true, func(ctx context.Context) ([]model.Notification, error) {
		return s.svc.Notifications.List(ctx, filter)
	})
}

// UnreadNotificationCount reads the unread badge count.
func (s *Sync) UnreadNotificationCount(ctx context.Context) Result[int] {
	return read(ctx, s, query.Notifications.Sub("unread"), true, func(ctx context.Context) (int, error) {
		return s.svc.Notifications.UnreadCount(ctx)
	})
}

// MarkNotificationRead marks one notification read, optimistically: the
// cached list and unread count are patched before the request goes out, then
// restored if it fails. On success the notifications subtree is invalidated
// so readers converge on server state.
func (s *Sync) MarkNotificationRead(ctx context.Context, id string) (MutationState, error) {
	listKey := query.Notifications.List("")
	countKey := query.Notifications.Sub("unread")

	prevList, hadList := s.store.Get(listKey)
	prevCount, hadCount := s.store.Get(countKey)

	if hadList {
		if items, ok := prevList.([]model.Notification); ok {
			patched := make([]model.Notification, len(items))
			copy(patched, items)
			for i := range patched {
				if patched[i].ID == id && !patched[i].IsRead {
					patched[i].IsRead = true
					if hadCount {
						if n, ok := prevCount.(int); ok && n > 0 {
							s.store.Set(countKey, n-1)
						}
					}
				}
			}
			s.store.Set(listKey, patched)
		}
	}

	err := s.svc.Notifications.MarkRead(ctx, id)
	if err != nil {
		if hadList {
			s.store.Set(listKey, prevList)
		}
		if hadCount {
			s.store.Set(countKey, prevCount)
		}
		if apierr.KindOf(err) != apierr.KindAuth {
			s.notifier.Error("Failed to Mark Notification Read", apierr.UserMessage(err))
		}
		s.record("notifications", "mark_read", "failure", err.Error())
		return MutationRolledBack, err
	}

	s.store.Invalidate(query.Notifications.All())
	s.record("notifications", "mark_read", "success", "")
	return MutationCommitted, nil
}

// MarkAllNotificationsRead marks every notification read.
func (s *Sync) MarkAllNotificationsRead(ctx context.Context) error {
	_, err := mutate(ctx, s, "notifications", "mark_all_read", "Failed to Mark Notifications Read",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.svc.Notifications.MarkAllRead(ctx)
		},
		func(struct{}) keySet {
			return keySet{invalidate: []query.Key{query.Notifications.All()}}
		},
	)
	return err
}

// DeleteNotification removes a notification.
func (s *Sync) DeleteNotification(ctx context.Context, id string) error {
	_, err := mutate(ctx, s, "notifications", "delete", "Failed to Delete Notification",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.svc.Notifications.Delete(ctx, id)
		},
		func(struct{}) keySet {
			return keySet{invalidate: []query.Key{query.Notifications.All()}}
		},
	)
	return err
}
