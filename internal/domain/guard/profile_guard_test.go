package guard

import (
	"testing"

	"coderr/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileAccessGuard_CanRead_AlwaysTrue(t *testing.T) {
	g := NewProfileAccessGuard()
	profile := &entity.Profile{UserID: uuid.New(), Type: entity.ProfileTypeBusiness}

	assert.True(t, g.CanRead(uuid.New(), profile))
	assert.True(t, g.CanRead(profile.UserID, profile))
}

func TestProfileAccessGuard_CanWrite_Owner(t *testing.T) {
	g := NewProfileAccessGuard()
	owner := uuid.New()
	profile := &entity.Profile{UserID: owner, Type: entity.ProfileTypeCustomer}

	err := g.CanWrite(owner, profile, []string{"first_name", "location"})

	require.NoError(t, err)
}

func TestProfileAccessGuard_CanWrite_NotOwner(t *testing.T) {
	g := NewProfileAccessGuard()
	profile := &entity.Profile{UserID: uuid.New(), Type: entity.ProfileTypeCustomer}

	err := g.CanWrite(uuid.New(), profile, []string{"first_name"})

	requireErrorCode(t, err, "NOT_OWNER")
}

func TestProfileAccessGuard_CanWrite_TypeImmutable(t *testing.T) {
	g := NewProfileAccessGuard()
	owner := uuid.New()
	profile := &entity.Profile{UserID: owner, Type: entity.ProfileTypeCustomer}

	err := g.CanWrite(owner, profile, []string{"type"})

	requireErrorCode(t, err, "IMMUTABLE_FIELD")
}
