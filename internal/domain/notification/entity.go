package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeVacationSubmitted NotificationType = "vacation_submitted"
	TypeVacationApproved  NotificationType = "vacation_approved"
	TypeVacationDenied    NotificationType = "vacation_denied"
	TypeVacationCancelled NotificationType = "vacation_cancelled"
	TypeEmployeeJoined    NotificationType = "employee_joined"
	TypeScheduleUpdated   NotificationType = "schedule_updated"
)

// AllNotificationTypes returns all available notification types
func AllNotificationTypes() []NotificationType {
	return []NotificationType{
		TypeVacationSubmitted,
		TypeVacationApproved,
		TypeVacationDenied,
		TypeVacationCancelled,
		TypeEmployeeJoined,
		TypeScheduleUpdated,
	}
}

// Notification represents a notification entity
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
