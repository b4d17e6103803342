package notification

import (
	"context"

	"go.uber.org/zap"

	"evervow/models"
	"evervow/utils"
)

// NotificationService delivers RSVP reminders to guests. Actual channels
// (email, SMS) are external collaborators; implementations adapt those.
type NotificationService interface {
	SendGuestReminder(ctx context.Context, payload models.ReminderPayload) error
}

// LogNotificationService records reminders in the application log. It is
// the default until a delivery channel is connected.
type LogNotificationService struct{}

func (LogNotificationService) SendGuestReminder(_ context.Context, payload models.ReminderPayload) error {
	utils.GetLogger().Info("RSVP reminder due",
		zap.String("weddingId", payload.WeddingID),
		zap.String("guestId", payload.GuestID),
		zap.String("guestName", payload.GuestName),
		zap.String("title", payload.Title),
	)
	return nil
}
