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

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	guard      *guard.ReviewGuard
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	Guard      *guard.ReviewGuard
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		guard:      params.Guard,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview creates a review on behalf of the acting customer. The
// duplicate lookup and the insert run in the same transaction, and the
// unique (business_user, reviewer) index backstops the remaining race.
func (srv *reviewService) CreateReview(ctx context.Context, actorID uuid.UUID, input usecase.CreateReviewInput) (*entity.Review, error) {
	var created *entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		reviewer, err := userRepo.FindByID(ctx, actorID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load reviewer")
		}

		target, err := userRepo.FindByID(ctx, input.BusinessUserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("review target not found")
			}

			return errors.Wrap(err, "failed to load review target")
		}

		reviewRepo := repoFactory.ReviewRepo()

		existing, err := reviewRepo.FindByReviewerAndBusiness(ctx, actorID, input.BusinessUserID)
		if err != nil && !errors.Is(err, repository.ErrReviewNotFound) {
			return errors.Wrap(err, "failed to check for existing review")
		}

		if err := srv.guard.CanCreate(reviewer, target, existing, input.Rating, input.Description); err != nil {
			return err
		}

		review := &entity.Review{
			BusinessUserID: input.BusinessUserID,
			ReviewerID:     actorID,
			Rating:         input.Rating,
			Description:    input.Description,
		}

		if err := reviewRepo.Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrDuplicateReview) {
				return domainerrors.ErrDuplicateReview
			}

			return errors.Wrap(err, "failed to create review")
		}

		created = review

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Review creation rejected", slog.Any("userID", actorID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Review created", slog.Any("reviewID", created.ID))

	return created, nil
}

// ListReviews retrieves reviews matching the input.
func (srv *reviewService) ListReviews(ctx context.Context, input usecase.ListReviewsInput) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.List(ctx, repository.ReviewFilter{
		BusinessUserID: input.BusinessUserID,
		ReviewerID:     input.ReviewerID,
		Ordering:       input.Ordering,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// UpdateReview applies a patch to the review on behalf of the actor. The
// guard enforces ownership and field immutability; the patch is applied and
// persisted in the same transaction as the load.
func (srv *reviewService) UpdateReview(ctx context.Context, actorID, reviewID uuid.UUID, patch guard.ReviewPatch) (*entity.Review, error) {
	var updated *entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		review, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("review not found")
			}

			return errors.Wrap(err, "failed to load review for update")
		}

		if err := srv.guard.CanPatch(actorID, review, patch); err != nil {
			return err
		}

		if patch.Rating != nil {
			review.Rating = *patch.Rating
		}
		if patch.Description != nil {
			review.Description = *patch.Description
		}

		if err := reviewRepo.Update(ctx, review); err != nil {
			return errors.Wrap(err, "failed to persist review update")
		}

		updated = review

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Review update rejected", slog.Any("reviewID", reviewID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteReview removes the review on behalf of the actor. Only the reviewer
// may delete their own review.
func (srv *reviewService) DeleteReview(ctx context.Context, actorID, reviewID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		review, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("review not found")
			}

			return errors.Wrap(err, "failed to load review for delete")
		}

		if review.ReviewerID != actorID {
			return domainerrors.ErrNotOwner.WrapMessage("review belongs to another user")
		}

		if err := reviewRepo.Delete(ctx, reviewID); err != nil {
			return errors.Wrap(err, "failed to delete review")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Review delete rejected", slog.Any("reviewID", reviewID), slog.Any("error", err))

		return err
	}

	return nil
}
