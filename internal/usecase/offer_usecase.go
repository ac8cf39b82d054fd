package usecase

import (
	"context"

	"coderr/internal/domain/entity"
	"coderr/internal/domain/guard"

	"github.com/google/uuid"
)

// CreateOfferInput defines the data required to publish a new offer.
// Exactly three details covering the basic/standard/premium tiers are
// required; the reconciler enforces the set.
type CreateOfferInput struct {
	Title       string
	Image       string
	Description string
	Details     []guard.DetailDraft
}

// ListOffersInput narrows, orders and paginates an offer listing.
type ListOffersInput struct {
	CreatorID       *uuid.UUID
	MinPrice        *int
	MaxDeliveryTime *int
	Search          string
	Ordering        string
	Page            int
	PageSize        int
}

// ListOffersOutput is one page of offers plus the total match count.
type ListOffersOutput struct {
	Offers   []*entity.Offer
	Total    int64
	Page     int
	PageSize int
}

// OfferUsecase defines the interface for offer-related business operations.
type OfferUsecase interface {
	// CreateOffer publishes a new offer owned by the acting business user.
	// The offer and its three details are written atomically.
	CreateOffer(ctx context.Context, actorID uuid.UUID, input CreateOfferInput) (*entity.Offer, error)

	// GetOffer retrieves a single offer with its details. Public read.
	GetOffer(ctx context.Context, offerID uuid.UUID) (*entity.Offer, error)

	// GetOfferDetail retrieves a single pricing tier by its own ID.
	GetOfferDetail(ctx context.Context, detailID uuid.UUID) (*entity.OfferDetail, error)

	// ListOffers retrieves a page of offers matching the input.
	ListOffers(ctx context.Context, input ListOffersInput) (*ListOffersOutput, error)

	// UpdateOffer applies a patch to the offer on behalf of the actor.
	// All touched rows are written atomically.
	UpdateOffer(ctx context.Context, actorID, offerID uuid.UUID, patch guard.OfferPatch) (*entity.Offer, error)

	// DeleteOffer removes the offer and its details on behalf of the actor.
	DeleteOffer(ctx context.Context, actorID, offerID uuid.UUID) error
}
