package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OfferModel mirrors the 'offers' table. An offer strongly owns its three
// detail rows; the cascade constraint removes them with the parent.
type OfferModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Image       string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Details []OfferDetailModel `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}

// OfferDetailModel mirrors the 'offer_details' table. Features is stored as a
// JSONB array column. The (offer_id, offer_type) pair is unique so no offer
// can ever carry two rows of the same tier.
type OfferDetailModel struct {
	ID                 uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OfferID            uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:idx_offer_details_offer_type"`
	Title              string                      `gorm:"type:varchar(255);not null"`
	Revisions          int                         `gorm:"not null"`
	DeliveryTimeInDays int                         `gorm:"not null"`
	Price              int                         `gorm:"not null"`
	Features           datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	OfferType          string                      `gorm:"type:varchar(20);not null;uniqueIndex:idx_offer_details_offer_type"`
}

// TableName explicitly sets the table name for GORM.
func (OfferDetailModel) TableName() string {
	return "offer_details"
}
