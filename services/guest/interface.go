package guest

import (
	"context"

	guestRepo "evervow/database/repository/guest"
)

// GuestService validates free-text RSVP input against a wedding's roster.
type GuestService interface {
	ValidateGuest(ctx context.Context, weddingID, rawName string) (Validation, error)
}

// DefaultGuestService is the production implementation, backed by the
// guest repository. Resolution itself stays pure; the repository only
// supplies the roster snapshot.
type DefaultGuestService struct {
	Repo guestRepo.GuestRepository
}
