package guard

import (
	"fmt"
	"strconv"

	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"

	"github.com/google/uuid"
)

// OfferDraft carries the scalar fields of a proposed new offer.
type OfferDraft struct {
	Title       string
	Image       string
	Description string
}

// DetailDraft carries one proposed pricing tier of a new offer.
type DetailDraft struct {
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              int
	Features           []string
	OfferType          entity.OfferType
}

// OfferPatch is an explicit partial update of an offer. Scalar fields are
// merged shallowly; detail patches are keyed by offer type and applied
// field-by-field.
type OfferPatch struct {
	Title       *string
	Image       *string
	Description *string
	Details     []DetailPatch
}

// DetailPatch is a typed partial update of one existing tier. OfferType is
// the lookup key for which child to patch; it is required but never itself
// mutated. A nil field leaves the corresponding tier field unchanged.
type DetailPatch struct {
	OfferType          *entity.OfferType
	Title              *string
	Revisions          *int
	DeliveryTimeInDays *int
	Price              *int
	Features           []string
}

// OfferReconciler validates and merges offer writes. It owns the
// exactly-three-tiers invariant: the tier set is checked once at creation
// and updates can only patch existing tiers, never add, remove or retype
// one, so the invariant holds structurally for the offer's lifetime.
type OfferReconciler struct{}

// NewOfferReconciler is the constructor for OfferReconciler.
func NewOfferReconciler() *OfferReconciler {
	return &OfferReconciler{}
}

// Create validates a proposed offer and returns the fully-formed entity
// owned by the acting business user.
func (r *OfferReconciler) Create(actor *entity.User, draft OfferDraft, details []DetailDraft) (*entity.Offer, error) {
	if !actor.IsBusiness() {
		return nil, domainerrors.ErrNotBusiness.WrapMessage("only business users may create offers")
	}

	if len(details) != len(entity.RequiredOfferTypes()) {
		return nil, domainerrors.ErrWrongDetailCount.WithDetails("got " + strconv.Itoa(len(details)) + " details")
	}

	seen := make(map[entity.OfferType]struct{}, len(details))
	for _, d := range details {
		if !d.OfferType.IsValid() {
			return nil, domainerrors.ErrDuplicateOrMissingTier.WithDetails(fmt.Sprintf("unknown offer_type %q", d.OfferType))
		}
		if _, dup := seen[d.OfferType]; dup {
			return nil, domainerrors.ErrDuplicateOrMissingTier.WithDetails(fmt.Sprintf("offer_type %q appears more than once", d.OfferType))
		}
		seen[d.OfferType] = struct{}{}
	}
	// len == 3 and no duplicates implies the set is exactly {basic, standard, premium}.

	offer := &entity.Offer{
		UserID:      actor.ID,
		Title:       draft.Title,
		Image:       draft.Image,
		Description: draft.Description,
		Details:     make([]entity.OfferDetail, 0, len(details)),
	}

	for _, d := range details {
		if err := validateDetailValues(d.OfferType, &d.Revisions, &d.DeliveryTimeInDays, &d.Price, d.Features, true); err != nil {
			return nil, err
		}

		features := make([]string, len(d.Features))
		copy(features, d.Features)

		offer.Details = append(offer.Details, entity.OfferDetail{
			Title:              d.Title,
			Revisions:          d.Revisions,
			DeliveryTimeInDays: d.DeliveryTimeInDays,
			Price:              d.Price,
			Features:           features,
			OfferType:          d.OfferType,
		})
	}

	return offer, nil
}

// Update merges a patch into the offer. Scalar fields replace existing
// values where supplied; each detail patch overwrites only the fields it
// carries on the tier addressed by its offer type. The offer is only
// mutated when the whole patch is admissible.
func (r *OfferReconciler) Update(actorID uuid.UUID, offer *entity.Offer, patch OfferPatch) error {
	if actorID != offer.UserID {
		return domainerrors.ErrNotOwner.WrapMessage("offer belongs to another user")
	}

	// Validate every detail patch before applying anything.
	targets := make([]*entity.OfferDetail, len(patch.Details))
	seen := make(map[entity.OfferType]struct{}, len(patch.Details))
	for i, dp := range patch.Details {
		if dp.OfferType == nil {
			return domainerrors.ErrMissingOfferType
		}
		if _, dup := seen[*dp.OfferType]; dup {
			return domainerrors.ErrDuplicateOfferType.WithDetails(fmt.Sprintf("offer_type %q", *dp.OfferType))
		}
		seen[*dp.OfferType] = struct{}{}

		target := offer.DetailByType(*dp.OfferType)
		if target == nil {
			return domainerrors.ErrDetailNotFound.WithDetails(fmt.Sprintf("offer_type %q", *dp.OfferType))
		}
		targets[i] = target

		if err := validateDetailValues(*dp.OfferType, dp.Revisions, dp.DeliveryTimeInDays, dp.Price, dp.Features, dp.Features != nil); err != nil {
			return err
		}
	}

	if patch.Title != nil {
		offer.Title = *patch.Title
	}
	if patch.Image != nil {
		offer.Image = *patch.Image
	}
	if patch.Description != nil {
		offer.Description = *patch.Description
	}

	for i, dp := range patch.Details {
		target := targets[i]
		if dp.Title != nil {
			target.Title = *dp.Title
		}
		if dp.Revisions != nil {
			target.Revisions = *dp.Revisions
		}
		if dp.DeliveryTimeInDays != nil {
			target.DeliveryTimeInDays = *dp.DeliveryTimeInDays
		}
		if dp.Price != nil {
			target.Price = *dp.Price
		}
		if dp.Features != nil {
			features := make([]string, len(dp.Features))
			copy(features, dp.Features)
			target.Features = features
		}
	}

	return nil
}

// validateDetailValues checks the numeric bounds and the features list of a
// tier. Nil pointers mean the field is not part of the write and is skipped;
// checkFeatures is set when the features list is part of the write.
func validateDetailValues(t entity.OfferType, revisions, deliveryTime, price *int, features []string, checkFeatures bool) error {
	if revisions != nil && *revisions < 0 {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("detail %q: revisions must be >= 0", t))
	}
	if deliveryTime != nil && *deliveryTime < 1 {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("detail %q: delivery_time_in_days must be >= 1", t))
	}
	if price != nil && *price < 0 {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("detail %q: price must be >= 0", t))
	}
	if checkFeatures && len(features) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("detail %q: features must not be empty", t))
	}

	return nil
}
