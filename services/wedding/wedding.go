package wedding

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"evervow/models"
	"evervow/services/routing"
)

var subdomainPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{1,61}[a-z0-9])$`)

// CreateWedding registers a new tenant. The subdomain must be well-formed,
// not platform-reserved, and unclaimed; the reserved check uses the same
// table the tenant router classifies hosts with, so registration and
// routing can never disagree.
func (s *DefaultWeddingService) CreateWedding(w models.Wedding) (*models.Wedding, error) {
	w.Subdomain = strings.ToLower(strings.TrimSpace(w.Subdomain))

	if err := s.validateSubdomain(w.Subdomain); err != nil {
		return nil, err
	}
	if w.CustomDomain != "" {
		w.CustomDomain = strings.ToLower(strings.TrimSpace(w.CustomDomain))
		existing, err := s.Repo.GetByCustomDomain(w.CustomDomain)
		if err != nil {
			return nil, fmt.Errorf("failed to check custom domain %s: %w", w.CustomDomain, err)
		}
		if existing != nil {
			return nil, ErrCustomDomainTaken(w.CustomDomain)
		}
	}

	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if err := s.Repo.Create(&w); err != nil {
		return nil, err
	}
	return &w, nil
}

// GetWedding retrieves a wedding by ID.
func (s *DefaultWeddingService) GetWedding(id string) (*models.Wedding, error) {
	return s.Repo.GetByID(id)
}

// GetBySubdomain retrieves a wedding by its platform subdomain.
func (s *DefaultWeddingService) GetBySubdomain(subdomain string) (*models.Wedding, error) {
	return s.Repo.GetBySubdomain(strings.ToLower(subdomain))
}

// UpdateWedding applies the non-nil fields of req.
func (s *DefaultWeddingService) UpdateWedding(req models.WeddingUpdateRequest) (*models.Wedding, error) {
	w, err := s.Repo.GetByID(req.ID)
	if err != nil {
		return nil, err
	}

	if req.PartnerOne != nil {
		w.PartnerOne = *req.PartnerOne
	}
	if req.PartnerTwo != nil {
		w.PartnerTwo = *req.PartnerTwo
	}
	if req.Date != nil {
		w.Date = *req.Date
	}
	if req.Venue != nil {
		w.Venue = *req.Venue
	}
	if req.Template != nil {
		w.Template = *req.Template
	}
	if req.CustomDomain != nil {
		domain := strings.ToLower(strings.TrimSpace(*req.CustomDomain))
		if domain != "" {
			existing, err := s.Repo.GetByCustomDomain(domain)
			if err != nil {
				return nil, fmt.Errorf("failed to check custom domain %s: %w", domain, err)
			}
			if existing != nil && existing.ID != w.ID {
				return nil, ErrCustomDomainTaken(domain)
			}
		}
		w.CustomDomain = domain
	}

	if err := s.Repo.Update(w); err != nil {
		return nil, err
	}
	s.invalidateLookupCache(w)
	return w, nil
}

// DeleteWedding removes a wedding.
func (s *DefaultWeddingService) DeleteWedding(id string) error {
	w, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidateLookupCache(w)
	return nil
}

// SubdomainAvailable reports whether subdomain can still be claimed.
func (s *DefaultWeddingService) SubdomainAvailable(subdomain string) (bool, error) {
	subdomain = strings.ToLower(strings.TrimSpace(subdomain))
	if !subdomainPattern.MatchString(subdomain) || routing.IsReservedSubdomain(subdomain) {
		return false, nil
	}
	existing, err := s.Repo.GetBySubdomain(subdomain)
	if err != nil {
		return false, fmt.Errorf("failed to check subdomain %s: %w", subdomain, err)
	}
	return existing == nil, nil
}

func (s *DefaultWeddingService) validateSubdomain(subdomain string) error {
	if !subdomainPattern.MatchString(subdomain) {
		return ErrInvalidSubdomain(subdomain)
	}
	if routing.IsReservedSubdomain(subdomain) {
		return ErrReservedSubdomain(subdomain)
	}
	existing, err := s.Repo.GetBySubdomain(subdomain)
	if err != nil {
		return fmt.Errorf("failed to check subdomain %s: %w", subdomain, err)
	}
	if existing != nil {
		return ErrSubdomainTaken(subdomain)
	}
	return nil
}
