package guard

import (
	"testing"

	"coderr/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestReviewGuard_CanCreate_Success(t *testing.T) {
	g := NewReviewGuard()

	err := g.CanCreate(customerUser(), businessUser(), nil, 5, "Great work")

	require.NoError(t, err)
}

func TestReviewGuard_CanCreate_TargetNotBusiness(t *testing.T) {
	g := NewReviewGuard()

	err := g.CanCreate(customerUser(), customerUser(), nil, 5, "Great work")

	requireErrorCode(t, err, "TARGET_NOT_BUSINESS")
}

func TestReviewGuard_CanCreate_ReviewerNotCustomer(t *testing.T) {
	g := NewReviewGuard()

	err := g.CanCreate(businessUser(), businessUser(), nil, 5, "Great work")

	requireErrorCode(t, err, "NOT_CUSTOMER")
}

func TestReviewGuard_CanCreate_DuplicateReview(t *testing.T) {
	g := NewReviewGuard()
	reviewer := customerUser()
	target := businessUser()
	existing := &entity.Review{
		ID:             uuid.New(),
		ReviewerID:     reviewer.ID,
		BusinessUserID: target.ID,
		Rating:         4,
		Description:    "first one",
	}

	err := g.CanCreate(reviewer, target, existing, 5, "second one")

	requireErrorCode(t, err, "DUPLICATE_REVIEW")
}

func TestReviewGuard_CanCreate_ContentBounds(t *testing.T) {
	g := NewReviewGuard()

	tests := []struct {
		name        string
		rating      int
		description string
		wantCode    string
	}{
		{"rating too low", 0, "text", "RATING_OUT_OF_RANGE"},
		{"rating too high", 6, "text", "RATING_OUT_OF_RANGE"},
		{"empty description", 3, "", "EMPTY_DESCRIPTION"},
		{"blank description", 3, "   ", "EMPTY_DESCRIPTION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.CanCreate(customerUser(), businessUser(), nil, tt.rating, tt.description)
			requireErrorCode(t, err, tt.wantCode)
		})
	}
}

func TestReviewGuard_CanPatch_Success(t *testing.T) {
	g := NewReviewGuard()
	reviewer := customerUser()
	review := &entity.Review{ReviewerID: reviewer.ID, BusinessUserID: uuid.New(), Rating: 3, Description: "ok"}

	err := g.CanPatch(reviewer.ID, review, ReviewPatch{Rating: ptr(5), Description: ptr("better than ok")})

	require.NoError(t, err)
}

func TestReviewGuard_CanPatch_NotOwner(t *testing.T) {
	g := NewReviewGuard()
	review := &entity.Review{ReviewerID: uuid.New(), BusinessUserID: uuid.New()}

	err := g.CanPatch(uuid.New(), review, ReviewPatch{Rating: ptr(1)})

	requireErrorCode(t, err, "NOT_OWNER")
}

func TestReviewGuard_CanPatch_ForbiddenFields(t *testing.T) {
	g := NewReviewGuard()
	reviewer := customerUser()
	review := &entity.Review{ReviewerID: reviewer.ID, BusinessUserID: uuid.New()}

	err := g.CanPatch(reviewer.ID, review, ReviewPatch{
		Rating:    ptr(4),
		Forbidden: []string{"business_user"},
	})

	requireErrorCode(t, err, "FORBIDDEN_FIELDS")
}

func TestReviewGuard_CanPatch_Revalidation(t *testing.T) {
	g := NewReviewGuard()
	reviewer := customerUser()
	review := &entity.Review{ReviewerID: reviewer.ID, BusinessUserID: uuid.New(), Rating: 3, Description: "ok"}

	err := g.CanPatch(reviewer.ID, review, ReviewPatch{Rating: ptr(9)})
	requireErrorCode(t, err, "RATING_OUT_OF_RANGE")

	err = g.CanPatch(reviewer.ID, review, ReviewPatch{Description: ptr("")})
	requireErrorCode(t, err, "EMPTY_DESCRIPTION")
}
