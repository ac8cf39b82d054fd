package guard

import (
	"testing"

	"coderr/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetailDrafts() []DetailDraft {
	return []DetailDraft{
		{Title: "Basic", Revisions: 1, DeliveryTimeInDays: 7, Price: 50, Features: []string{"Logo"}, OfferType: entity.OfferTypeBasic},
		{Title: "Standard", Revisions: 3, DeliveryTimeInDays: 5, Price: 100, Features: []string{"Logo", "Card"}, OfferType: entity.OfferTypeStandard},
		{Title: "Premium", Revisions: 5, DeliveryTimeInDays: 3, Price: 200, Features: []string{"Logo", "Card", "Flyer"}, OfferType: entity.OfferTypePremium},
	}
}

func TestOfferReconciler_Create_Success(t *testing.T) {
	r := NewOfferReconciler()
	actor := businessUser()

	offer, err := r.Create(actor, OfferDraft{Title: "Design package", Description: "Full branding"}, validDetailDrafts())

	require.NoError(t, err)
	require.Len(t, offer.Details, 3)
	assert.Equal(t, actor.ID, offer.UserID)
	assert.Equal(t, 50, offer.MinPrice())
	assert.Equal(t, 3, offer.MinDeliveryTime())

	types := make(map[entity.OfferType]int)
	for _, d := range offer.Details {
		types[d.OfferType]++
	}
	assert.Equal(t, map[entity.OfferType]int{
		entity.OfferTypeBasic:    1,
		entity.OfferTypeStandard: 1,
		entity.OfferTypePremium:  1,
	}, types)
}

func TestOfferReconciler_Create_NotBusiness(t *testing.T) {
	r := NewOfferReconciler()

	_, err := r.Create(customerUser(), OfferDraft{Title: "x"}, validDetailDrafts())

	requireErrorCode(t, err, "NOT_BUSINESS")
}

func TestOfferReconciler_Create_WrongDetailCount(t *testing.T) {
	r := NewOfferReconciler()

	for _, count := range []int{0, 1, 2, 4} {
		details := validDetailDrafts()
		if count < 3 {
			details = details[:count]
		} else {
			extra := details[0]
			extra.OfferType = entity.OfferTypeBasic
			details = append(details, extra)
		}

		_, err := r.Create(businessUser(), OfferDraft{}, details)
		requireErrorCode(t, err, "WRONG_DETAIL_COUNT")
	}
}

func TestOfferReconciler_Create_DuplicateTier(t *testing.T) {
	r := NewOfferReconciler()

	details := validDetailDrafts()
	details[1].OfferType = entity.OfferTypeBasic // basic, basic, premium

	_, err := r.Create(businessUser(), OfferDraft{}, details)

	requireErrorCode(t, err, "DUPLICATE_OR_MISSING_TIER")
}

func TestOfferReconciler_Create_UnknownTier(t *testing.T) {
	r := NewOfferReconciler()

	details := validDetailDrafts()
	details[2].OfferType = entity.OfferType("deluxe")

	_, err := r.Create(businessUser(), OfferDraft{}, details)

	requireErrorCode(t, err, "DUPLICATE_OR_MISSING_TIER")
}

func TestOfferReconciler_Create_InvalidDetailValues(t *testing.T) {
	r := NewOfferReconciler()

	tests := []struct {
		name   string
		mutate func(*DetailDraft)
	}{
		{"negative revisions", func(d *DetailDraft) { d.Revisions = -1 }},
		{"zero delivery time", func(d *DetailDraft) { d.DeliveryTimeInDays = 0 }},
		{"negative price", func(d *DetailDraft) { d.Price = -5 }},
		{"empty features", func(d *DetailDraft) { d.Features = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := validDetailDrafts()
			tt.mutate(&details[0])

			_, err := r.Create(businessUser(), OfferDraft{}, details)
			requireErrorCode(t, err, "VALIDATION_FAILED")
		})
	}
}

func existingOffer(ownerID uuid.UUID) *entity.Offer {
	return &entity.Offer{
		ID:     uuid.New(),
		UserID: ownerID,
		Title:  "Old title",
		Details: []entity.OfferDetail{
			{ID: uuid.New(), Title: "Basic", Revisions: 1, DeliveryTimeInDays: 7, Price: 50, Features: []string{"Logo"}, OfferType: entity.OfferTypeBasic},
			{ID: uuid.New(), Title: "Standard", Revisions: 3, DeliveryTimeInDays: 5, Price: 100, Features: []string{"Logo"}, OfferType: entity.OfferTypeStandard},
			{ID: uuid.New(), Title: "Premium", Revisions: 5, DeliveryTimeInDays: 3, Price: 200, Features: []string{"Logo"}, OfferType: entity.OfferTypePremium},
		},
	}
}

func TestOfferReconciler_Update_ScalarMerge(t *testing.T) {
	r := NewOfferReconciler()
	owner := uuid.New()
	offer := existingOffer(owner)

	err := r.Update(owner, offer, OfferPatch{Title: ptr("New title")})

	require.NoError(t, err)
	assert.Equal(t, "New title", offer.Title)
	// Absent fields stay untouched.
	assert.Equal(t, "", offer.Description)
}

func TestOfferReconciler_Update_DetailPatchByType(t *testing.T) {
	r := NewOfferReconciler()
	owner := uuid.New()
	offer := existingOffer(owner)

	err := r.Update(owner, offer, OfferPatch{
		Details: []DetailPatch{
			{OfferType: ptr(entity.OfferTypeBasic), Price: ptr(75)},
			{OfferType: ptr(entity.OfferTypePremium), Title: ptr("Premium+"), Features: []string{"Everything"}},
		},
	})

	require.NoError(t, err)

	basic := offer.DetailByType(entity.OfferTypeBasic)
	assert.Equal(t, 75, basic.Price)
	assert.Equal(t, "Basic", basic.Title) // unspecified fields unchanged

	premium := offer.DetailByType(entity.OfferTypePremium)
	assert.Equal(t, "Premium+", premium.Title)
	assert.Equal(t, []string{"Everything"}, premium.Features)

	// Updates never change the count or type set of children.
	require.Len(t, offer.Details, 3)
	for _, want := range entity.RequiredOfferTypes() {
		assert.NotNil(t, offer.DetailByType(want))
	}
}

func TestOfferReconciler_Update_NotOwner(t *testing.T) {
	r := NewOfferReconciler()
	offer := existingOffer(uuid.New())

	err := r.Update(uuid.New(), offer, OfferPatch{Title: ptr("hijack")})

	requireErrorCode(t, err, "NOT_OWNER")
	assert.Equal(t, "Old title", offer.Title)
}

func TestOfferReconciler_Update_MissingOfferType(t *testing.T) {
	r := NewOfferReconciler()
	owner := uuid.New()

	err := r.Update(owner, existingOffer(owner), OfferPatch{
		Details: []DetailPatch{{Price: ptr(10)}},
	})

	requireErrorCode(t, err, "MISSING_OFFER_TYPE")
}

func TestOfferReconciler_Update_DuplicateOfferType(t *testing.T) {
	r := NewOfferReconciler()
	owner := uuid.New()

	err := r.Update(owner, existingOffer(owner), OfferPatch{
		Details: []DetailPatch{
			{OfferType: ptr(entity.OfferTypeBasic), Price: ptr(10)},
			{OfferType: ptr(entity.OfferTypeBasic), Price: ptr(20)},
		},
	})

	requireErrorCode(t, err, "DUPLICATE_OFFER_TYPE")
}

func TestOfferReconciler_Update_DetailNotFound(t *testing.T) {
	r := NewOfferReconciler()
	owner := uuid.New()
	offer := existingOffer(owner)
	// Remove the basic tier to simulate a stale patch target.
	offer.Details = offer.Details[1:]

	err := r.Update(owner, offer, OfferPatch{
		Details: []DetailPatch{{OfferType: ptr(entity.OfferTypeBasic), Price: ptr(50)}},
	})

	requireErrorCode(t, err, "DETAIL_NOT_FOUND")
}

func TestOfferReconciler_Update_InvalidPatchLeavesOfferUntouched(t *testing.T) {
	r := NewOfferReconciler()
	owner := uuid.New()
	offer := existingOffer(owner)

	err := r.Update(owner, offer, OfferPatch{
		Title: ptr("New title"),
		Details: []DetailPatch{
			{OfferType: ptr(entity.OfferTypeBasic), Price: ptr(-1)},
		},
	})

	requireErrorCode(t, err, "VALIDATION_FAILED")
	assert.Equal(t, "Old title", offer.Title)
	assert.Equal(t, 50, offer.DetailByType(entity.OfferTypeBasic).Price)
}
