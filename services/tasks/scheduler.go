package tasks

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"evervow/config"
	guestRepo "evervow/database/repository/guest"
	"evervow/models"
)

// ReminderScheduler enqueues RSVP reminders for guests who have not
// answered yet. Delivery happens in the cron worker; this only schedules.
type ReminderScheduler struct {
	Guests guestRepo.GuestRepository
	client *asynq.Client
}

// NewReminderScheduler creates a scheduler writing to the reminder queue.
func NewReminderScheduler(guests guestRepo.GuestRepository) *ReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	return &ReminderScheduler{Guests: guests, client: client}
}

// ScheduleForPending enqueues one reminder per still-pending guest of the
// wedding, firing at fireAt. Returns how many reminders were scheduled.
func (s *ReminderScheduler) ScheduleForPending(weddingID string, fireAt time.Time, title, body string) (int, error) {
	pending, err := s.Guests.ListByStatus(weddingID, models.RSVPPending)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending guests for wedding %s: %w", weddingID, err)
	}

	scheduled := 0
	for _, g := range pending {
		payload := models.ReminderPayload{
			ReminderID: uuid.New().String(),
			WeddingID:  weddingID,
			GuestID:    g.ID,
			GuestName:  g.FirstName,
			FireDate:   fireAt.Format(time.RFC3339),
			Title:      title,
			Body:       body,
		}
		task, opts, err := NewRsvpReminderTask(payload, fireAt)
		if err != nil {
			return scheduled, fmt.Errorf("failed to build reminder task for guest %s: %w", g.ID, err)
		}
		if _, err := s.client.Enqueue(task, opts...); err != nil {
			return scheduled, fmt.Errorf("failed to enqueue reminder for guest %s: %w", g.ID, err)
		}
		scheduled++
	}
	return scheduled, nil
}

// Close releases the underlying queue connection.
func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}
