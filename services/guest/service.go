package guest

import (
	"context"
	"fmt"
)

// ValidateGuest loads the wedding's roster snapshot and resolves rawName
// against it.
func (s *DefaultGuestService) ValidateGuest(ctx context.Context, weddingID, rawName string) (Validation, error) {
	roster, err := s.Repo.ListByWedding(weddingID)
	if err != nil {
		return Validation{}, fmt.Errorf("failed to load roster for wedding %s: %w", weddingID, err)
	}
	return Validate(rawName, roster), nil
}
