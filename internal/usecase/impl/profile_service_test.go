package impl

import (
	"context"
	"testing"

	"coderr/internal/domain/entity"
	"coderr/internal/domain/guard"
	"coderr/internal/domain/repository"
	mockRepo "coderr/internal/mocks/repository"
	"coderr/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileService(
	txManager *mockRepo.MockTransactionManager,
	userRepo *mockRepo.MockUserRepository,
) usecase.ProfileUsecase {
	return NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Guard:     guard.NewProfileAccessGuard(),
		Logger:    newDiscardLogger(),
	})
}

func strPtr(s string) *string {
	return &s
}

func TestProfileService_GetProfile(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newProfileService(txManager, userRepo)

	ctx := context.Background()
	user := newBusinessUser()

	userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	got, err := service.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newProfileService(txManager, userRepo)

	ctx := context.Background()
	unknownID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, unknownID).Return(nil, repository.ErrUserNotFound)

	_, err := service.GetProfile(ctx, unknownID)
	requireErrorCode(t, err, "USER_NOT_FOUND")
}

func TestProfileService_UpdateProfile(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txManager := passthroughTxManager(t, factory)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newProfileService(txManager, userRepo)

	ctx := context.Background()
	user := newBusinessUser()

	txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	txUserRepo.EXPECT().Update(ctx, user).Return(nil)

	updated, err := service.UpdateProfile(ctx, user.ID, user.ID, usecase.ProfilePatchInput{
		FirstName:     strPtr("Max"),
		Location:      strPtr("Berlin"),
		ChangedFields: []string{"first_name", "location"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Max", updated.FirstName)
	assert.Equal(t, "Berlin", updated.Profile.Location)
}

func TestProfileService_UpdateProfile_NotOwner(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txManager := passthroughTxManager(t, factory)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newProfileService(txManager, userRepo)

	ctx := context.Background()
	user := newBusinessUser()
	stranger := uuid.New()

	txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	_, err := service.UpdateProfile(ctx, stranger, user.ID, usecase.ProfilePatchInput{
		Location:      strPtr("Berlin"),
		ChangedFields: []string{"location"},
	})
	requireErrorCode(t, err, "NOT_OWNER")
}

func TestProfileService_UpdateProfile_TypeImmutable(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txManager := passthroughTxManager(t, factory)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newProfileService(txManager, userRepo)

	ctx := context.Background()
	user := newCustomerUser()

	txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	_, err := service.UpdateProfile(ctx, user.ID, user.ID, usecase.ProfilePatchInput{
		ChangedFields: []string{"type"},
	})
	requireErrorCode(t, err, "IMMUTABLE_FIELD")
}

func TestProfileService_ListByType(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newProfileService(txManager, userRepo)

	ctx := context.Background()
	users := []*entity.User{newBusinessUser(), newBusinessUser()}

	userRepo.EXPECT().
		ListByProfileType(ctx, entity.ProfileTypeBusiness).
		Return(users, nil)

	got, err := service.ListByType(ctx, entity.ProfileTypeBusiness)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestProfileService_ListByType_UnknownType(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newProfileService(txManager, userRepo)

	_, err := service.ListByType(context.Background(), entity.ProfileType("admin"))
	requireErrorCode(t, err, "VALIDATION_FAILED")
}
