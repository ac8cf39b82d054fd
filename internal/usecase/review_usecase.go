package usecase

import (
	"context"

	"coderr/internal/domain/entity"
	"coderr/internal/domain/guard"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to review a business user.
type CreateReviewInput struct {
	BusinessUserID uuid.UUID
	Rating         int
	Description    string
}

// ListReviewsInput narrows and orders a review listing.
type ListReviewsInput struct {
	BusinessUserID *uuid.UUID
	ReviewerID     *uuid.UUID
	Ordering       string
}

// ReviewUsecase defines the interface for review-related business operations.
type ReviewUsecase interface {
	// CreateReview creates a review on behalf of the acting customer. The
	// duplicate check and the insert share one transaction.
	CreateReview(ctx context.Context, actorID uuid.UUID, input CreateReviewInput) (*entity.Review, error)

	// ListReviews retrieves reviews matching the input.
	ListReviews(ctx context.Context, input ListReviewsInput) ([]*entity.Review, error)

	// UpdateReview applies a patch to the review on behalf of the actor.
	UpdateReview(ctx context.Context, actorID, reviewID uuid.UUID, patch guard.ReviewPatch) (*entity.Review, error)

	// DeleteReview removes the review on behalf of the actor.
	DeleteReview(ctx context.Context, actorID, reviewID uuid.UUID) error
}
