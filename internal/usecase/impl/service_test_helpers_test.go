package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"coderr/config"
	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/repository"
	mockRepo "coderr/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Pagination: &config.PaginationConfig{
			DefaultPageSize: 6,
			MaxPageSize:     100,
		},
	}
}

// passthroughTxManager returns a transaction manager mock that simply runs
// the callback against the given factory, mirroring a committed transaction.
func passthroughTxManager(t *testing.T, factory *mockRepo.MockRepositoryFactory) *mockRepo.MockTransactionManager {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txManager
}

// requireErrorCode asserts that err carries the given business error code.
func requireErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	require.Equal(t, code, appErr.ErrorCode())
}

func newBusinessUser() *entity.User {
	id := uuid.New()

	return &entity.User{
		ID:       id,
		Username: "example_business",
		Email:    "business@example.com",
		Profile: &entity.Profile{
			UserID: id,
			Type:   entity.ProfileTypeBusiness,
		},
	}
}

func newCustomerUser() *entity.User {
	id := uuid.New()

	return &entity.User{
		ID:       id,
		Username: "example_customer",
		Email:    "customer@example.com",
		Profile: &entity.Profile{
			UserID: id,
			Type:   entity.ProfileTypeCustomer,
		},
	}
}

// newOfferFor builds a complete three-tier offer owned by the given user.
func newOfferFor(ownerID uuid.UUID) *entity.Offer {
	offerID := uuid.New()

	return &entity.Offer{
		ID:     offerID,
		UserID: ownerID,
		Title:  "Logo Design",
		Details: []entity.OfferDetail{
			{
				ID:                 uuid.New(),
				OfferID:            offerID,
				Title:              "Basic",
				Revisions:          2,
				DeliveryTimeInDays: 5,
				Price:              100,
				Features:           []string{"Logo"},
				OfferType:          entity.OfferTypeBasic,
			},
			{
				ID:                 uuid.New(),
				OfferID:            offerID,
				Title:              "Standard",
				Revisions:          5,
				DeliveryTimeInDays: 7,
				Price:              200,
				Features:           []string{"Logo", "Flyer"},
				OfferType:          entity.OfferTypeStandard,
			},
			{
				ID:                 uuid.New(),
				OfferID:            offerID,
				Title:              "Premium",
				Revisions:          10,
				DeliveryTimeInDays: 10,
				Price:              500,
				Features:           []string{"Logo", "Flyer", "Website"},
				OfferType:          entity.OfferTypePremium,
			},
		},
	}
}
