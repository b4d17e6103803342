package guest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"evervow/models"
)

// testRoster mirrors a typical small wedding roster: a solo invitee, an
// invitee with an open plus-one slot, and a pair of named companions.
func testRoster() []models.Guest {
	return []models.Guest{
		{ID: "g-1", FirstName: "Hunter", LastName: "Wells"},
		{ID: "g-2", FirstName: "Tyler", LastName: "Brooks", PlusOneInvited: true},
		{ID: "g-3", FirstName: "Ken", LastName: "Ito", CompanionName: "Terri"},
		{ID: "g-4", FirstName: "Shayna", LastName: "Cole", CompanionName: "Ray"},
	}
}

func TestResolve_Classification(t *testing.T) {
	roster := testRoster()

	assert.Equal(t, models.GuestOnly, Resolve("Hunter", roster))
	assert.Equal(t, models.GuestPlusOneInvited, Resolve("Tyler", roster))
	assert.Equal(t, models.GuestAndKnownPlusOne, Resolve("Ken", roster))
}

func TestResolve_CaseInsensitive(t *testing.T) {
	roster := testRoster()

	for _, name := range []string{"hunter", "HUNTER", "HuNtEr", "  Hunter  "} {
		assert.Equal(t, models.GuestOnly, Resolve(name, roster), "input %q", name)
	}
}

func TestResolve_Unknown(t *testing.T) {
	roster := testRoster()

	testCases := []struct {
		name  string
		input string
	}{
		{"prefix of a first name never matches", "Hunt"},
		{"superstring of a first name never matches", "Hunters"},
		{"full name is longer than the stored lookup key", "Hunter Wells"},
		{"last name alone is rejected even when unique", "Wells"},
		{"unlisted name", "Morgan"},
		{"empty input", ""},
		{"whitespace only", "   "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, models.GuestUnknown, Resolve(tc.input, roster))
		})
	}
}

func TestCompanionName(t *testing.T) {
	roster := testRoster()

	assert.Equal(t, "Terri", CompanionName("Ken", roster))
	assert.Equal(t, "Terri", CompanionName("ken", roster))
	assert.Equal(t, "", CompanionName("Hunter", roster))
	assert.Equal(t, "", CompanionName("Ito", roster))
}

func TestValidate_CarriesIdentity(t *testing.T) {
	roster := testRoster()

	v := Validate("shayna", roster)
	assert.Equal(t, models.GuestAndKnownPlusOne, v.GuestType)
	assert.Equal(t, "g-4", v.GuestID)
	assert.Equal(t, "Shayna", v.Name)
	assert.Equal(t, "Ray", v.CompanionName)

	unknown := Validate("nobody", roster)
	assert.Equal(t, models.GuestUnknown, unknown.GuestType)
	assert.Empty(t, unknown.GuestID)
}

func TestResolve_DoesNotMutateRoster(t *testing.T) {
	roster := testRoster()
	want := testRoster()

	Resolve("Hunter", roster)
	Resolve("nobody", roster)

	assert.Equal(t, want, roster)
}
