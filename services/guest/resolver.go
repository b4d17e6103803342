package guest

import (
	"strings"

	"evervow/models"
)

// Validation is the outcome of resolving free-text guest input against a
// wedding's roster.
type Validation struct {
	GuestType     models.GuestType `json:"guestType"`
	GuestID       string           `json:"guestId,omitempty"`
	Name          string           `json:"name,omitempty"`
	CompanionName string           `json:"companionName,omitempty"`
}

// Resolve classifies raw guest input against a roster snapshot.
//
// Input is trimmed and compared case-insensitively, and must equal a
// complete first name on the roster. Partial input ("Hunt" for "Hunter"),
// last-name-only input, and "first last" input all resolve to GuestUnknown:
// the roster's lookup keys are first names, and the product policy is to
// require an exact first-name match rather than guess.
func Resolve(raw string, roster []models.Guest) models.GuestType {
	entry, ok := lookup(raw, roster)
	if !ok {
		return models.GuestUnknown
	}
	return entry.Type()
}

// CompanionName returns the named companion paired with the resolved entry,
// or "" when the input does not resolve or the entry has no known companion.
func CompanionName(raw string, roster []models.Guest) string {
	entry, ok := lookup(raw, roster)
	if !ok {
		return ""
	}
	return entry.CompanionName
}

// Validate resolves raw input and bundles the classification with the
// matched entry's identity, for callers that drive an RSVP conversation.
func Validate(raw string, roster []models.Guest) Validation {
	entry, ok := lookup(raw, roster)
	if !ok {
		return Validation{GuestType: models.GuestUnknown}
	}
	return Validation{
		GuestType:     entry.Type(),
		GuestID:       entry.ID,
		Name:          entry.FirstName,
		CompanionName: entry.CompanionName,
	}
}

func lookup(raw string, roster []models.Guest) (models.Guest, bool) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return models.Guest{}, false
	}
	for _, g := range roster {
		if strings.ToLower(strings.TrimSpace(g.FirstName)) == name {
			return g, true
		}
	}
	return models.Guest{}, false
}
