package impl

import (
	"context"
	"log/slog"

	"coderr/config"
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

const (
	fallbackDefaultPageSize = 6
	fallbackMaxPageSize     = 100
)

// offerService implements the OfferUsecase interface.
type offerService struct {
	txManager       repository.TransactionManager
	offerRepo       repository.OfferRepository
	userRepo        repository.UserRepository
	reconciler      *guard.OfferReconciler
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// OfferServiceParams holds dependencies for offerService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	OfferRepo  repository.OfferRepository
	UserRepo   repository.UserRepository
	Reconciler *guard.OfferReconciler
	Config     *config.Config
	Logger     *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	defaultPageSize := fallbackDefaultPageSize
	maxPageSize := fallbackMaxPageSize
	if params.Config != nil && params.Config.Pagination != nil {
		if params.Config.Pagination.DefaultPageSize > 0 {
			defaultPageSize = params.Config.Pagination.DefaultPageSize
		}
		if params.Config.Pagination.MaxPageSize > 0 {
			maxPageSize = params.Config.Pagination.MaxPageSize
		}
	}

	return &offerService{
		txManager:       params.TxManager,
		offerRepo:       params.OfferRepo,
		userRepo:        params.UserRepo,
		reconciler:      params.Reconciler,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          params.Logger,
	}
}

func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOffer publishes a new offer owned by the acting business user. The
// reconciler validates the tier set; the offer and its three details are
// written in one transaction so either all four rows exist or none do.
func (srv *offerService) CreateOffer(ctx context.Context, actorID uuid.UUID, input usecase.CreateOfferInput) (*entity.Offer, error) {
	actor, err := srv.loadUser(ctx, actorID)
	if err != nil {
		return nil, err
	}

	draft := guard.OfferDraft{
		Title:       input.Title,
		Image:       input.Image,
		Description: input.Description,
	}

	offer, err := srv.reconciler.Create(actor, draft, input.Details)
	if err != nil {
		srv.log(ctx).Warn("Offer creation rejected", slog.Any("userID", actorID), slog.Any("error", err))

		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.OfferRepo().Create(ctx, offer); err != nil {
			return errors.Wrap(err, "failed to create offer")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Offer created", slog.Any("offerID", offer.ID), slog.Any("userID", actorID))

	return offer, nil
}

// GetOffer retrieves a single offer with its details. Public read.
func (srv *offerService) GetOffer(ctx context.Context, offerID uuid.UUID) (*entity.Offer, error) {
	offer, err := srv.offerRepo.FindByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("offer not found")
		}

		return nil, errors.Wrap(err, "failed to load offer")
	}

	return offer, nil
}

// GetOfferDetail retrieves a single pricing tier by its own ID.
func (srv *offerService) GetOfferDetail(ctx context.Context, detailID uuid.UUID) (*entity.OfferDetail, error) {
	detail, err := srv.offerRepo.FindDetailByID(ctx, detailID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferDetailNotFound) {
			return nil, domainerrors.ErrOfferDetailInvalid
		}

		return nil, errors.Wrap(err, "failed to load offer detail")
	}

	return detail, nil
}

// ListOffers retrieves a page of offers matching the input.
func (srv *offerService) ListOffers(ctx context.Context, input usecase.ListOffersInput) (*usecase.ListOffersOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize <= 0 {
		pageSize = srv.defaultPageSize
	}
	if pageSize > srv.maxPageSize {
		pageSize = srv.maxPageSize
	}

	offers, total, err := srv.offerRepo.List(ctx, repository.OfferFilter{
		CreatorID:       input.CreatorID,
		MinPrice:        input.MinPrice,
		MaxDeliveryTime: input.MaxDeliveryTime,
		Search:          input.Search,
		Ordering:        input.Ordering,
		Page:            page,
		PageSize:        pageSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	return &usecase.ListOffersOutput{
		Offers:   offers,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateOffer applies a patch to the offer on behalf of the actor. The load,
// the merge decision and the writes share one transaction, so a rejected
// patch leaves every row untouched.
func (srv *offerService) UpdateOffer(ctx context.Context, actorID, offerID uuid.UUID, patch guard.OfferPatch) (*entity.Offer, error) {
	var updated *entity.Offer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		offer, err := offerRepo.FindByID(ctx, offerID)
		if err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("offer not found")
			}

			return errors.Wrap(err, "failed to load offer for update")
		}

		if err := srv.reconciler.Update(actorID, offer, patch); err != nil {
			return err
		}

		if err := offerRepo.Update(ctx, offer); err != nil {
			return errors.Wrap(err, "failed to persist offer update")
		}

		updated = offer

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Offer update rejected", slog.Any("offerID", offerID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteOffer removes the offer and its details on behalf of the actor.
func (srv *offerService) DeleteOffer(ctx context.Context, actorID, offerID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		offer, err := offerRepo.FindByID(ctx, offerID)
		if err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("offer not found")
			}

			return errors.Wrap(err, "failed to load offer for delete")
		}

		if offer.UserID != actorID {
			return domainerrors.ErrNotOwner.WrapMessage("offer belongs to another user")
		}

		if err := offerRepo.Delete(ctx, offerID); err != nil {
			return errors.Wrap(err, "failed to delete offer")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Offer delete rejected", slog.Any("offerID", offerID), slog.Any("error", err))

		return err
	}

	return nil
}

// loadUser resolves a user with profile, mapping the not-found sentinel.
func (srv *offerService) loadUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}
