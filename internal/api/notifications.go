package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/finview-dev/finview/internal/model"
)

// NotificationService wraps the /notifications endpoints.
type NotificationService struct {
	c *Client
}

// NotificationFilter narrows notification listings.
type NotificationFilter struct {
	Type       model.NotificationType
	UnreadOnly bool
}

// Values renders the filter as request query parameters.
func (f NotificationFilter) Values() url.Values {
	v := url.Values{}
	if f.Type != "" {
		v.Set("type", string(f.Type))
	}
	if f.UnreadOnly {
		v.Set("unread", "true")
	}
	return v
}

// List fetches notifications matching the filter.
func (s *NotificationService) List(ctx context.Context, filter NotificationFilter) ([]model.Notification, error) {
	var out []model.Notification
	if err := s.c.do(ctx, http.MethodGet, "/notifications", filter.Values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnreadCount fetches the number of unread notifications.
func (s *NotificationService) UnreadCount(ctx context.Context) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := s.c.do(ctx, http.MethodGet, "/notifications/unread-count", nil, nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// MarkRead marks one notification read.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodPost, "/notifications/"+id+"/read", nil, nil, nil)
}

// MarkAllRead marks every notification read.
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	return s.c.do(ctx, http.MethodPost, "/notifications/read-all", nil, nil, nil)
}

// Delete removes a notification.
func (s *NotificationService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/notifications/"+id, nil, nil, nil)
}
