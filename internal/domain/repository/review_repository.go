package repository

import (
	"context"
	"errors"

	"coderr/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific sentinel errors for review persistence.
var (
	ErrReviewNotFound = errors.New("review not found")

	// ErrDuplicateReview is returned when the unique (business_user, reviewer)
	// constraint rejects a create. It is the storage-level backstop for the
	// one-review-per-pair rule under concurrent creates.
	ErrDuplicateReview = errors.New("review already exists for this reviewer and business user")
)

// ReviewFilter narrows and orders review listings.
type ReviewFilter struct {
	BusinessUserID *uuid.UUID // only reviews targeting this business user
	ReviewerID     *uuid.UUID // only reviews written by this reviewer
	Ordering       string     // "updated_at", "-updated_at", "rating" or "-rating"
}

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// Create persists a new review. Returns ErrDuplicateReview when a review
	// for the same (reviewer, business_user) pair already exists.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a single review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByReviewerAndBusiness retrieves the review for an exact pair, if any.
	FindByReviewerAndBusiness(ctx context.Context, reviewerID, businessUserID uuid.UUID) (*entity.Review, error)

	// List retrieves reviews matching the filter.
	List(ctx context.Context, filter ReviewFilter) ([]*entity.Review, error)

	// Update saves the review's mutable fields.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes the review.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts all reviews.
	Count(ctx context.Context) (int64, error)

	// AverageRating returns the mean rating across all reviews, 0 when none exist.
	AverageRating(ctx context.Context) (float64, error)
}
