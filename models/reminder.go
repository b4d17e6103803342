package models

// ReminderPayload is the asynq task payload for a scheduled RSVP reminder.
type ReminderPayload struct {
	ReminderID string `json:"reminderId"`
	WeddingID  string `json:"weddingId"`
	GuestID    string `json:"guestId"`
	GuestName  string `json:"guestName"`
	FireDate   string `json:"fireDate"`
	Title      string `json:"title"`
	Body       string `json:"body"`
}
