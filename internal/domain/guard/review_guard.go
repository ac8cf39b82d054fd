package guard

import (
	"fmt"
	"strings"

	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"

	"github.com/google/uuid"
)

// ReviewPatch is a typed partial update of a review. Forbidden holds the
// names of identity fields (business_user, reviewer) found in the payload;
// those are immutable after creation.
type ReviewPatch struct {
	Rating      *int
	Description *string
	Forbidden   []string
}

// ReviewGuard enforces review admissibility and patch restrictions.
type ReviewGuard struct{}

// NewReviewGuard is the constructor for ReviewGuard.
func NewReviewGuard() *ReviewGuard {
	return &ReviewGuard{}
}

// CanCreate decides whether the reviewer may create a review with the given
// content for the target user. existing is the review already stored for
// this (reviewer, target) pair, or nil; it must be looked up in the same
// atomic unit as the create to close the duplicate race.
func (g *ReviewGuard) CanCreate(reviewer, target *entity.User, existing *entity.Review, rating int, description string) error {
	if !reviewer.IsCustomer() {
		return domainerrors.ErrNotCustomer.WrapMessage("only customers may write reviews")
	}

	if !target.IsBusiness() {
		return domainerrors.ErrTargetNotBusiness
	}

	if existing != nil {
		return domainerrors.ErrDuplicateReview
	}

	if err := validateReviewContent(&rating, &description); err != nil {
		return err
	}

	return nil
}

// CanPatch decides whether the actor may apply the patch to the review.
// Only the reviewer may patch, identity fields are immutable, and the
// mutable fields are re-validated with the creation bounds.
func (g *ReviewGuard) CanPatch(actorID uuid.UUID, review *entity.Review, patch ReviewPatch) error {
	if actorID != review.ReviewerID {
		return domainerrors.ErrNotOwner.WrapMessage("review belongs to another user")
	}

	if len(patch.Forbidden) > 0 {
		return domainerrors.ErrForbiddenFields.WithDetails("fields: " + strings.Join(patch.Forbidden, ", "))
	}

	if err := validateReviewContent(patch.Rating, patch.Description); err != nil {
		return err
	}

	return nil
}

// validateReviewContent checks rating bounds and description emptiness for
// the fields that are part of the write. Nil pointers are skipped.
func validateReviewContent(rating *int, description *string) error {
	if rating != nil && (*rating < entity.ReviewRatingMin || *rating > entity.ReviewRatingMax) {
		return domainerrors.ErrRatingOutOfRange.WithDetails(fmt.Sprintf("rating %d", *rating))
	}
	if description != nil && strings.TrimSpace(*description) == "" {
		return domainerrors.ErrEmptyDescription
	}

	return nil
}
