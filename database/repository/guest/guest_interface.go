package guestRepo

import (
	"evervow/models"
)

// GuestRepository defines methods for guest roster data access.
type GuestRepository interface {
	// GetByID retrieves a guest by its unique ID.
	GetByID(id string) (*models.Guest, error)
	// ListByWedding retrieves the full roster snapshot for one wedding.
	ListByWedding(weddingID string) ([]models.Guest, error)
	// ListByStatus retrieves a wedding's guests filtered by RSVP status.
	ListByStatus(weddingID string, status models.RSVPStatus) ([]models.Guest, error)
	// Create inserts a new roster entry.
	Create(guest *models.Guest) error
	// Update modifies an existing roster entry.
	Update(guest *models.Guest) error
	// Delete removes a roster entry by its ID.
	Delete(id string) error
	// UpdateRSVP records a completed RSVP outcome for a guest.
	UpdateRSVP(id string, record models.RSVPRecord) error
}
