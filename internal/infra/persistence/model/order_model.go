package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. The commercial columns are a
// snapshot of the purchased detail taken at creation time; offer_detail_id is
// a weak reference kept without a foreign key constraint so the order
// survives deletion of the source offer.
type OrderModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	BusinessUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	OfferDetailID  uuid.UUID `gorm:"type:uuid;not null"`
	Status         string    `gorm:"type:varchar(20);not null;index"`

	Title              string                      `gorm:"type:varchar(255);not null"`
	Revisions          int                         `gorm:"not null"`
	DeliveryTimeInDays int                         `gorm:"not null"`
	Price              int                         `gorm:"not null"`
	Features           datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	OfferType          string                      `gorm:"type:varchar(20);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
