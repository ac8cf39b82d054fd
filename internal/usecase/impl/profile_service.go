package impl

import (
	"context"
	"log/slog"

	deliverycontext "coderr/internal/delivery/context"
	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/guard"
	"coderr/internal/domain/repository"
	"coderr/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface. It loads state,
// delegates the write decision to the access guard, and persists the merged
// result atomically.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	guard     *guard.ProfileAccessGuard
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Guard     *guard.ProfileAccessGuard
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		guard:     params.Guard,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves a user together with their profile. Public read.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// UpdateProfile applies a patch to the user's profile on behalf of the actor.
// The load, the guard decision and the write share one transaction.
func (srv *profileService) UpdateProfile(ctx context.Context, actorID, userID uuid.UUID, input usecase.ProfilePatchInput) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load user for profile update")
		}
		if user.Profile == nil {
			return domainerrors.ErrNotFound.WrapMessage("user has no profile")
		}

		if err := srv.guard.CanWrite(actorID, user.Profile, input.ChangedFields); err != nil {
			return err
		}

		applyProfilePatch(user, input)

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to persist profile update")
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update rejected", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// ListByType retrieves all users whose profile has the given type.
func (srv *profileService) ListByType(ctx context.Context, profileType entity.ProfileType) ([]*entity.User, error) {
	if !profileType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown profile type")
	}

	users, err := srv.userRepo.ListByProfileType(ctx, profileType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles by type")
	}

	return users, nil
}

// applyProfilePatch merges the supplied fields into the user and its profile.
func applyProfilePatch(user *entity.User, input usecase.ProfilePatchInput) {
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.File != nil {
		user.Profile.File = *input.File
	}
	if input.Location != nil {
		user.Profile.Location = *input.Location
	}
	if input.Tel != nil {
		user.Profile.Tel = *input.Tel
	}
	if input.Description != nil {
		user.Profile.Description = *input.Description
	}
	if input.WorkingHours != nil {
		user.Profile.WorkingHours = *input.WorkingHours
	}
}
