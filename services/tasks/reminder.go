package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"evervow/models"
)

// TypeRsvpReminder is the asynq task type for scheduled RSVP reminders.
const TypeRsvpReminder = "rsvp:reminder"

// NewRsvpReminderTask builds the asynq task for one guest's reminder,
// scheduled to fire at fireAt.
func NewRsvpReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeRsvpReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
