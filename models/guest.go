package models

import "time"

// GuestType classifies how an invitee may RSVP.
type GuestType string

const (
	// GuestOnly is a single invitee with no companion of any kind.
	GuestOnly GuestType = "GUEST_ONLY"
	// GuestPlusOneInvited may bring one unnamed guest, decided at RSVP time.
	GuestPlusOneInvited GuestType = "GUEST_PLUSONE_INVITED"
	// GuestAndKnownPlusOne is paired with a specific named companion.
	GuestAndKnownPlusOne GuestType = "GUEST_AND_KNOWN_PLUSONE"
	// GuestUnknown means no unambiguous roster match was found.
	GuestUnknown GuestType = "UNKNOWN"
)

// RSVPStatus represents the attendance confirmation status.
type RSVPStatus string

const (
	RSVPPending  RSVPStatus = "pending"
	RSVPAccepted RSVPStatus = "accepted"
	RSVPDeclined RSVPStatus = "declined"
)

// Guest represents one roster entry of a wedding.
//
// FirstName is the RSVP lookup key; LastName exists for dashboard display
// only and never participates in name resolution.
type Guest struct {
	ID             string     `bson:"id" json:"id"`
	WeddingID      string     `bson:"weddingId" json:"weddingId"`
	FirstName      string     `bson:"firstName" json:"firstName"`
	LastName       string     `bson:"lastName,omitempty" json:"lastName,omitempty"`
	PlusOneInvited bool       `bson:"plusOneInvited" json:"plusOneInvited"`
	CompanionName  string     `bson:"companionName,omitempty" json:"companionName,omitempty"`
	RSVPStatus     RSVPStatus `bson:"rsvpStatus" json:"rsvpStatus"`
	PlusOneComing  bool       `bson:"plusOneComing,omitempty" json:"plusOneComing,omitempty"`
	CompanionComes bool       `bson:"companionComing,omitempty" json:"companionComing,omitempty"`
	RSVPAt         time.Time  `bson:"rsvpAt,omitempty" json:"rsvpAt,omitempty"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// Type derives the RSVP classification for this roster entry.
func (g Guest) Type() GuestType {
	switch {
	case g.PlusOneInvited:
		return GuestPlusOneInvited
	case g.CompanionName != "":
		return GuestAndKnownPlusOne
	default:
		return GuestOnly
	}
}

// RSVPRecord captures a completed RSVP conversation outcome.
type RSVPRecord struct {
	Status         RSVPStatus `json:"status"`
	PlusOneComing  bool       `json:"plusOneComing"`
	CompanionComes bool       `json:"companionComing"`
}
