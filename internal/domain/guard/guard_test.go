package guard

import (
	"testing"

	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// requireErrorCode asserts that err is an AppError with the given business code.
func requireErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	require.Equal(t, code, appErr.ErrorCode())
}

func businessUser() *entity.User {
	id := uuid.New()

	return &entity.User{
		ID:       id,
		Username: "business",
		Profile:  &entity.Profile{UserID: id, Type: entity.ProfileTypeBusiness},
	}
}

func customerUser() *entity.User {
	id := uuid.New()

	return &entity.User{
		ID:       id,
		Username: "customer",
		Profile:  &entity.Profile{UserID: id, Type: entity.ProfileTypeCustomer},
	}
}

func ptr[T any](v T) *T {
	return &v
}
