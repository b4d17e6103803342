package weddingRepo

import (
	"evervow/models"
)

// WeddingRepository defines methods for wedding tenant data access.
type WeddingRepository interface {
	// GetByID retrieves a wedding by its unique ID.
	GetByID(id string) (*models.Wedding, error)
	// GetBySubdomain retrieves a wedding by its platform subdomain.
	// Returns (nil, nil) when no wedding claims the subdomain.
	GetBySubdomain(subdomain string) (*models.Wedding, error)
	// GetByCustomDomain retrieves a wedding by its custom apex domain.
	// Returns (nil, nil) when no wedding claims the domain.
	GetByCustomDomain(domain string) (*models.Wedding, error)
	// Create inserts a new wedding record.
	Create(wedding *models.Wedding) error
	// Update modifies an existing wedding record.
	Update(wedding *models.Wedding) error
	// Delete removes a wedding record by its ID.
	Delete(id string) error
}
