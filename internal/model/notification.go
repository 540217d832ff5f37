package model

import "time"

// NotificationType is the event domain a notification belongs to.
type NotificationType string

const (
	NotificationTypeBill        NotificationType = "bill"
	NotificationTypeBudget      NotificationType = "budget"
	NotificationTypeGoal        NotificationType = "goal"
	NotificationTypeTransaction NotificationType = "transaction"
	NotificationTypeSystem      NotificationType = "system"
)

// NotificationPriority orders notifications for display.
type NotificationPriority string

const (
	NotificationPriorityHigh   NotificationPriority = "high"
	NotificationPriorityMedium NotificationPriority = "medium"
	NotificationPriorityLow    NotificationPriority = "low"
)

// Notification mirrors the backend notification record.
type Notification struct {
	ID        string               `json:"id"`
	Type      NotificationType     `json:"type"`
	Priority  NotificationPriority `json:"priority"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	IsRead    bool                 `json:"isRead"`
	CreatedAt time.Time            `json:"createdAt"`
	ActionURL string               `json:"actionUrl,omitempty"`
}
