// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle label of an order. The recognized label set
// is a deployment contract handed to the status machine at construction;
// the constants below are the default set.
type OrderStatus string

const (
	// OrderStatusPending is the initial status of every order.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusInProgress marks an order the business has started working on.
	OrderStatusInProgress OrderStatus = "in_progress"
	// OrderStatusCompleted is a terminal status.
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusCancelled is a terminal status.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the status accepts no further transitions.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// DefaultOrderStatuses returns the default recognized label set.
func DefaultOrderStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled}
}

// Order is a customer's purchase record against one offer detail. The
// commercial terms are a snapshot captured at creation time; they never
// change even if the source detail is edited later. Only Status mutates
// over the order's lifetime.
type Order struct {
	ID             uuid.UUID   // The Global Unique Identifier (GUID) for the order.
	CustomerUserID uuid.UUID   // The customer that placed the order.
	BusinessUserID uuid.UUID   // The business that owns the referenced detail's offer.
	OfferDetailID  uuid.UUID   // Weak reference to the source detail, resolved at creation.
	Status         OrderStatus // Lifecycle status.

	// Snapshot of the referenced detail's commercial terms.
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              int
	Features           []string
	OfferType          OfferType

	CreatedAt time.Time // Timestamp of when this order was created.
	UpdatedAt time.Time // Timestamp of the last status change.
}

// NewOrderFromDetail builds a pending order snapshotting the given detail's
// commercial terms for the given customer/business pair.
func NewOrderFromDetail(customerID, businessID uuid.UUID, detail *OfferDetail) *Order {
	features := make([]string, len(detail.Features))
	copy(features, detail.Features)

	return &Order{
		CustomerUserID:     customerID,
		BusinessUserID:     businessID,
		OfferDetailID:      detail.ID,
		Status:             OrderStatusPending,
		Title:              detail.Title,
		Revisions:          detail.Revisions,
		DeliveryTimeInDays: detail.DeliveryTimeInDays,
		Price:              detail.Price,
		Features:           features,
		OfferType:          detail.OfferType,
	}
}
