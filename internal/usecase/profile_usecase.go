package usecase

import (
	"context"

	"coderr/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfilePatchInput is a typed partial update of a profile and its owning
// user's display fields. ChangedFields carries the raw payload key names so
// the access guard can reject writes touching immutable fields.
type ProfilePatchInput struct {
	FirstName     *string
	LastName      *string
	Email         *string
	File          *string
	Location      *string
	Tel           *string
	Description   *string
	WorkingHours  *string
	ChangedFields []string
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// GetProfile retrieves a user together with their profile. Public read.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies a patch to the user's profile on behalf of the actor.
	UpdateProfile(ctx context.Context, actorID, userID uuid.UUID, input ProfilePatchInput) (*entity.User, error)

	// ListByType retrieves all users whose profile has the given type.
	ListByType(ctx context.Context, profileType entity.ProfileType) ([]*entity.User, error)
}
