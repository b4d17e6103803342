package models

import "time"

// Wedding represents one tenant of the platform.
type Wedding struct {
	ID           string    `bson:"id" json:"id"`
	PartnerOne   string    `bson:"partnerOne" json:"partnerOne"`
	PartnerTwo   string    `bson:"partnerTwo" json:"partnerTwo"`
	Date         time.Time `bson:"date,omitempty" json:"date,omitempty"`
	Venue        string    `bson:"venue,omitempty" json:"venue,omitempty"`
	Subdomain    string    `bson:"subdomain" json:"subdomain"`
	CustomDomain string    `bson:"customDomain,omitempty" json:"customDomain,omitempty"`
	Template     string    `bson:"template,omitempty" json:"template,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// WeddingUpdateRequest carries the mutable wedding settings.
type WeddingUpdateRequest struct {
	ID           string     `json:"id"`
	PartnerOne   *string    `json:"partnerOne,omitempty"`
	PartnerTwo   *string    `json:"partnerTwo,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
	Venue        *string    `json:"venue,omitempty"`
	CustomDomain *string    `json:"customDomain,omitempty"`
	Template     *string    `json:"template,omitempty"`
}
