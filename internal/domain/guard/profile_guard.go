package guard

import (
	"slices"

	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"

	"github.com/google/uuid"
)

// ProfileFieldType is the name of the immutable profile type field as it
// appears in patch payloads.
const ProfileFieldType = "type"

// ProfileAccessGuard decides who may read or mutate a profile.
type ProfileAccessGuard struct{}

// NewProfileAccessGuard is the constructor for ProfileAccessGuard.
func NewProfileAccessGuard() *ProfileAccessGuard {
	return &ProfileAccessGuard{}
}

// CanRead reports whether the actor may read the profile.
// Profiles are publicly listable, so this always holds.
func (g *ProfileAccessGuard) CanRead(_ uuid.UUID, _ *entity.Profile) bool {
	return true
}

// CanWrite decides whether the actor may apply a patch touching the given
// field names to the profile. Only the owner may write, and the profile
// type is immutable once the profile exists.
func (g *ProfileAccessGuard) CanWrite(actorID uuid.UUID, profile *entity.Profile, changedFields []string) error {
	if actorID != profile.UserID {
		return domainerrors.ErrNotOwner.WrapMessage("profile belongs to another user")
	}

	if slices.Contains(changedFields, ProfileFieldType) {
		return domainerrors.ErrImmutableField.WithDetails("field: " + ProfileFieldType)
	}

	return nil
}
