package rsvp

import (
	"context"

	guestRepo "evervow/database/repository/guest"
	"evervow/services/guest"
)

// Session holds one guest's conversation between requests. It lives in
// Redis under its own ID, never in process memory, so two tabs or two
// devices each get an isolated conversation.
type Session struct {
	SessionID string `json:"sessionId"`
	WeddingID string `json:"weddingId"`
	GuestID   string `json:"guestId,omitempty"`
	State     State  `json:"state"`

	// Answers collected along the way, persisted to the roster when the
	// conversation reaches success.
	Attending       bool `json:"attending"`
	PlusOneComing   bool `json:"plusOneComing"`
	CompanionComing bool `json:"companionComing"`
}

// SessionService drives RSVP conversations over stored sessions.
type SessionService interface {
	StartSession(ctx context.Context, weddingID string) (*Session, error)
	SubmitGuestName(ctx context.Context, sessionID, name string) (*Session, error)
	Answer(ctx context.Context, sessionID string, event Event) (*Session, error)
}

// DefaultSessionService implements SessionService on Redis-stored sessions.
type DefaultSessionService struct {
	Guests   guestRepo.GuestRepository
	Resolver guest.GuestService
}
