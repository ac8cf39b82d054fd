// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OfferType identifies one of the three fixed pricing tiers of an offer.
type OfferType string

const (
	// OfferTypeBasic is the entry tier.
	OfferTypeBasic OfferType = "basic"
	// OfferTypeStandard is the middle tier.
	OfferTypeStandard OfferType = "standard"
	// OfferTypePremium is the top tier.
	OfferTypePremium OfferType = "premium"
)

// String returns the string representation of the OfferType.
func (t OfferType) String() string {
	return string(t)
}

// IsValid checks if the OfferType is a valid value.
func (t OfferType) IsValid() bool {
	switch t {
	case OfferTypeBasic, OfferTypeStandard, OfferTypePremium:
		return true
	default:
		return false
	}
}

// RequiredOfferTypes returns the complete tier set every offer must carry.
func RequiredOfferTypes() []OfferType {
	return []OfferType{OfferTypeBasic, OfferTypeStandard, OfferTypePremium}
}

// Offer is a business-published listing. It strongly owns exactly three
// OfferDetail children whose offer_type values are always the set
// {basic, standard, premium}; the invariant is established at creation and
// never violated afterwards because updates can only patch existing tiers.
type Offer struct {
	ID          uuid.UUID     // The Global Unique Identifier (GUID) for the offer.
	UserID      uuid.UUID     // The ID of the business user that owns this offer.
	Title       string        // Listing title.
	Image       string        // Optional image reference.
	Description string        // Listing description.
	Details     []OfferDetail // The three pricing tiers, strongly owned (cascade delete).
	CreatedAt   time.Time     // Timestamp of when this offer was created.
	UpdatedAt   time.Time     // Timestamp of the last modification.
}

// DetailByType returns the child detail with the given offer type, or nil.
func (o *Offer) DetailByType(t OfferType) *OfferDetail {
	for i := range o.Details {
		if o.Details[i].OfferType == t {
			return &o.Details[i]
		}
	}

	return nil
}

// MinPrice returns the lowest tier price across the offer's details.
func (o *Offer) MinPrice() int {
	if len(o.Details) == 0 {
		return 0
	}

	minPrice := o.Details[0].Price
	for _, d := range o.Details[1:] {
		if d.Price < minPrice {
			minPrice = d.Price
		}
	}

	return minPrice
}

// MinDeliveryTime returns the shortest delivery time across the offer's details.
func (o *Offer) MinDeliveryTime() int {
	if len(o.Details) == 0 {
		return 0
	}

	minDays := o.Details[0].DeliveryTimeInDays
	for _, d := range o.Details[1:] {
		if d.DeliveryTimeInDays < minDays {
			minDays = d.DeliveryTimeInDays
		}
	}

	return minDays
}

// OfferDetail is one pricing tier of an offer. Its OfferType is immutable
// once set; all other fields are patchable by the offer owner.
type OfferDetail struct {
	ID                 uuid.UUID // The Global Unique Identifier (GUID) for the detail.
	OfferID            uuid.UUID // The owning offer.
	Title              string    // Tier title.
	Revisions          int       // Number of included revisions, >= 0.
	DeliveryTimeInDays int       // Promised delivery time, >= 1.
	Price              int       // Price in integer currency units, >= 0.
	Features           []string  // Non-empty ordered list of included features.
	OfferType          OfferType // basic, standard or premium. Immutable.
}
