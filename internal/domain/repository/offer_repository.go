package repository

import (
	"context"
	"errors"

	"coderr/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific sentinel errors for offer lookups.
var (
	ErrOfferNotFound       = errors.New("offer not found")
	ErrOfferDetailNotFound = errors.New("offer detail not found")
)

// OfferFilter narrows and orders offer listings.
type OfferFilter struct {
	CreatorID       *uuid.UUID // only offers owned by this user
	MinPrice        *int       // only offers whose cheapest tier costs at least this
	MaxDeliveryTime *int       // only offers with a tier deliverable within this many days
	Search          string     // substring match on title/description
	Ordering        string     // "updated_at", "-updated_at", "min_price" or "-min_price"
	Page            int        // 1-based page number; 0 means first page
	PageSize        int        // 0 means repository default
}

// OfferRepository defines the standard operations for offer persistence.
// An offer and its three details always travel together: Create and Update
// write the parent and children in one atomic unit, Delete cascades.
type OfferRepository interface {
	// Create persists a new offer together with its details.
	Create(ctx context.Context, offer *entity.Offer) error

	// FindByID retrieves a single offer with its details.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// FindDetailByID retrieves a single detail row by its own ID.
	FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error)

	// Update saves the offer's scalar fields and all of its details.
	Update(ctx context.Context, offer *entity.Offer) error

	// Delete removes the offer and cascades to its details.
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves a page of offers matching the filter plus the total count.
	List(ctx context.Context, filter OfferFilter) ([]*entity.Offer, int64, error)

	// Count counts all offers.
	Count(ctx context.Context) (int64, error)
}
