package notification

import (
	"context"
	"fmt"

	"github.com/careplan/careplan-backend-go/internal/domain/notification"
	"github.com/careplan/careplan-backend-go/internal/domain/vacation"
)

// VacationNotifier translates workflow events into queued in-app
// notifications. It satisfies vacation.Notifier.
type VacationNotifier struct {
	notifications notification.Service
}

func NewVacationNotifier(notifications notification.Service) *VacationNotifier {
	return &VacationNotifier{notifications: notifications}
}

func (n *VacationNotifier) Notify(ctx context.Context, recipientID string, kind vacation.EventKind, req vacation.Request) error {
	title, message := composeMessage(kind, req)

	return n.notifications.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: recipientID,
		Type:        notification.NotificationType(kind),
		Title:       title,
		Message:     message,
		Data: map[string]interface{}{
			"request_id":    req.ID,
			"employee_id":   req.EmployeeID,
			"start_date":    req.StartDate.Format("2006-01-02"),
			"end_date":      req.EndDate.Format("2006-01-02"),
			"request_type":  string(req.RequestType),
			"business_days": req.BusinessDays,
			"status":        string(req.Status),
		},
	})
}

func composeMessage(kind vacation.EventKind, req vacation.Request) (string, string) {
	name := "An employee"
	if req.EmployeeName != nil {
		name = *req.EmployeeName
	}
	dates := fmt.Sprintf("%s to %s", req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))

	switch kind {
	case vacation.EventSubmitted:
		return "New vacation request",
			fmt.Sprintf("%s requested %d vacation day(s) from %s.", name, req.BusinessDays, dates)
	case vacation.EventApproved:
		return "Vacation request approved",
			fmt.Sprintf("Your vacation from %s was approved.", dates)
	case vacation.EventDenied:
		reason := ""
		if req.DenialReason != nil {
			reason = " Reason: " + *req.DenialReason
		}
		return "Vacation request denied",
			fmt.Sprintf("Your vacation from %s was denied.%s", dates, reason)
	case vacation.EventCancelled:
		return "Vacation request cancelled",
			fmt.Sprintf("The vacation request from %s was cancelled.", dates)
	default:
		return "Vacation request update",
			fmt.Sprintf("The vacation request from %s changed status to %s.", dates, req.Status)
	}
}
