package wedding

import (
	weddingRepo "evervow/database/repository/wedding"
	"evervow/models"
	"evervow/services/routing"
)

// WeddingService manages tenant weddings and supplies the router's lookups.
type WeddingService interface {
	CreateWedding(w models.Wedding) (*models.Wedding, error)
	GetWedding(id string) (*models.Wedding, error)
	GetBySubdomain(subdomain string) (*models.Wedding, error)
	UpdateWedding(req models.WeddingUpdateRequest) (*models.Wedding, error)
	DeleteWedding(id string) error
	SubdomainAvailable(subdomain string) (bool, error)
	RouterLookups() routing.Lookups
}

// DefaultWeddingService is the production implementation.
type DefaultWeddingService struct {
	Repo weddingRepo.WeddingRepository
}
