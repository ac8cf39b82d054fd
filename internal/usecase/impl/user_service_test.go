package impl

import (
	"context"
	"testing"

	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/repository"
	mockRepo "coderr/internal/mocks/repository"
	mockSvc "coderr/internal/mocks/service"
	"coderr/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(
	txManager *mockRepo.MockTransactionManager,
	userRepo *mockRepo.MockUserRepository,
	hasher *mockSvc.MockPasswordHasher,
	tokenService *mockSvc.MockTokenService,
) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})
}

func TestUserService_Register(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txManager := passthroughTxManager(t, factory)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	service := newUserService(txManager, userRepo, hasher, tokenService)

	ctx := context.Background()
	newID := uuid.New()

	hasher.EXPECT().Hash("examplePassword").Return("hashed", nil)

	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = newID

			return nil
		})

	tokenService.EXPECT().
		GenerateTokens(newID, []string{"customer"}).
		Return("access", "refresh", nil)

	output, err := service.Register(ctx, usecase.RegisterInput{
		Username:         "exampleUsername",
		Email:            "example@mail.de",
		Password:         "examplePassword",
		RepeatedPassword: "examplePassword",
		Type:             entity.ProfileTypeCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, newID, output.User.ID)
	assert.Equal(t, "hashed", output.User.PasswordHash)
	require.NotNil(t, output.User.Profile)
	assert.Equal(t, entity.ProfileTypeCustomer, output.User.Profile.Type)
}

func TestUserService_Register_PasswordMismatch(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	service := newUserService(txManager, userRepo, hasher, tokenService)

	_, err := service.Register(context.Background(), usecase.RegisterInput{
		Username:         "exampleUsername",
		Password:         "examplePassword",
		RepeatedPassword: "differentPassword",
		Type:             entity.ProfileTypeCustomer,
	})
	requireErrorCode(t, err, "VALIDATION_FAILED")
}

func TestUserService_Register_UnknownProfileType(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	service := newUserService(txManager, userRepo, hasher, tokenService)

	_, err := service.Register(context.Background(), usecase.RegisterInput{
		Username:         "exampleUsername",
		Password:         "examplePassword",
		RepeatedPassword: "examplePassword",
		Type:             entity.ProfileType("admin"),
	})
	requireErrorCode(t, err, "VALIDATION_FAILED")
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txManager := passthroughTxManager(t, factory)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	service := newUserService(txManager, userRepo, hasher, tokenService)

	ctx := context.Background()

	hasher.EXPECT().Hash("examplePassword").Return("hashed", nil)

	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists)

	_, err := service.Register(ctx, usecase.RegisterInput{
		Username:         "exampleUsername",
		Password:         "examplePassword",
		RepeatedPassword: "examplePassword",
		Type:             entity.ProfileTypeBusiness,
	})
	requireErrorCode(t, err, "USER_ALREADY_EXISTS")
}

func TestUserService_Login(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	service := newUserService(txManager, userRepo, hasher, tokenService)

	ctx := context.Background()
	user := newCustomerUser()
	user.PasswordHash = "hashed"

	userRepo.EXPECT().FindByUsername(ctx, user.Username).Return(user, nil)
	hasher.EXPECT().Check("examplePassword", "hashed").Return(true)
	tokenService.EXPECT().
		GenerateTokens(user.ID, []string{"customer"}).
		Return("access", "refresh", nil)

	output, err := service.Login(ctx, usecase.LoginInput{
		Username: user.Username,
		Password: "examplePassword",
	})
	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	service := newUserService(txManager, userRepo, hasher, tokenService)

	ctx := context.Background()

	userRepo.EXPECT().
		FindByUsername(ctx, "nobody").
		Return(nil, repository.ErrUserNotFound)

	_, err := service.Login(ctx, usecase.LoginInput{Username: "nobody", Password: "examplePassword"})
	requireErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	service := newUserService(txManager, userRepo, hasher, tokenService)

	ctx := context.Background()
	user := newCustomerUser()
	user.PasswordHash = "hashed"

	userRepo.EXPECT().FindByUsername(ctx, user.Username).Return(user, nil)
	hasher.EXPECT().Check("wrongPassword", "hashed").Return(false)

	_, err := service.Login(ctx, usecase.LoginInput{
		Username: user.Username,
		Password: "wrongPassword",
	})
	requireErrorCode(t, err, "INVALID_CREDENTIALS")
}
