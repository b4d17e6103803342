package wedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evervow/models"
)

// fakeWeddingRepo is an in-memory WeddingRepository for service tests.
type fakeWeddingRepo struct {
	weddings map[string]*models.Wedding
}

func newFakeWeddingRepo() *fakeWeddingRepo {
	return &fakeWeddingRepo{weddings: make(map[string]*models.Wedding)}
}

func (r *fakeWeddingRepo) GetByID(id string) (*models.Wedding, error) {
	w, ok := r.weddings[id]
	if !ok {
		return nil, assert.AnError
	}
	copied := *w
	return &copied, nil
}

func (r *fakeWeddingRepo) GetBySubdomain(subdomain string) (*models.Wedding, error) {
	for _, w := range r.weddings {
		if w.Subdomain == subdomain {
			copied := *w
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeWeddingRepo) GetByCustomDomain(domain string) (*models.Wedding, error) {
	for _, w := range r.weddings {
		if w.CustomDomain == domain {
			copied := *w
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeWeddingRepo) Create(w *models.Wedding) error {
	copied := *w
	r.weddings[w.ID] = &copied
	return nil
}

func (r *fakeWeddingRepo) Update(w *models.Wedding) error {
	copied := *w
	r.weddings[w.ID] = &copied
	return nil
}

func (r *fakeWeddingRepo) Delete(id string) error {
	delete(r.weddings, id)
	return nil
}

func TestCreateWedding(t *testing.T) {
	svc := &DefaultWeddingService{Repo: newFakeWeddingRepo()}

	created, err := svc.CreateWedding(models.Wedding{
		PartnerOne: "Sally",
		PartnerTwo: "Tom",
		Subdomain:  "  SallyAndTom  ",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "sallyandtom", created.Subdomain)
}

func TestCreateWedding_RejectsBadSubdomains(t *testing.T) {
	repo := newFakeWeddingRepo()
	svc := &DefaultWeddingService{Repo: repo}

	_, err := svc.CreateWedding(models.Wedding{Subdomain: "taken", PartnerOne: "A", PartnerTwo: "B"})
	require.NoError(t, err)

	testCases := []struct {
		name      string
		subdomain string
		code      string
	}{
		{"reserved platform label", "dashboard", "reservedSubdomain"},
		{"reserved www", "www", "reservedSubdomain"},
		{"already claimed", "taken", "subdomainTaken"},
		{"too short", "ab", "invalidSubdomain"},
		{"illegal characters", "sally&tom", "invalidSubdomain"},
		{"leading hyphen", "-sally", "invalidSubdomain"},
		{"empty", "", "invalidSubdomain"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateWedding(models.Wedding{Subdomain: tc.subdomain, PartnerOne: "A", PartnerTwo: "B"})
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.code, verr.Code)
		})
	}
}

func TestCreateWedding_RejectsClaimedCustomDomain(t *testing.T) {
	svc := &DefaultWeddingService{Repo: newFakeWeddingRepo()}

	_, err := svc.CreateWedding(models.Wedding{
		Subdomain:    "first",
		CustomDomain: "sallyandtom.com",
		PartnerOne:   "Sally",
		PartnerTwo:   "Tom",
	})
	require.NoError(t, err)

	_, err = svc.CreateWedding(models.Wedding{
		Subdomain:    "second",
		CustomDomain: "sallyandtom.com",
		PartnerOne:   "Pat",
		PartnerTwo:   "Sam",
	})
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "customDomainTaken", verr.Code)
}

func TestSubdomainAvailable(t *testing.T) {
	svc := &DefaultWeddingService{Repo: newFakeWeddingRepo()}

	_, err := svc.CreateWedding(models.Wedding{Subdomain: "claimed", PartnerOne: "A", PartnerTwo: "B"})
	require.NoError(t, err)

	testCases := []struct {
		subdomain string
		want      bool
	}{
		{"sallyandtom", true},
		{"claimed", false},
		{"www", false},
		{"api", false},
		{"ab", false},
	}

	for _, tc := range testCases {
		got, err := svc.SubdomainAvailable(tc.subdomain)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "subdomain %q", tc.subdomain)
	}
}
