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

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	machine   *guard.OrderStatusMachine
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	Machine   *guard.OrderStatusMachine
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		userRepo:  params.UserRepo,
		machine:   params.Machine,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places an order for the given offer detail on behalf of the
// acting customer. The detail lookup, the owner resolution and the insert
// share one transaction; the order snapshots the detail's commercial terms.
func (srv *orderService) CreateOrder(ctx context.Context, actorID, offerDetailID uuid.UUID) (*entity.Order, error) {
	var created *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := repoFactory.UserRepo().FindByID(ctx, actorID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load actor for order creation")
		}
		if !actor.IsCustomer() {
			return domainerrors.ErrNotCustomer.WrapMessage("only customers may place orders")
		}

		offerRepo := repoFactory.OfferRepo()

		detail, err := offerRepo.FindDetailByID(ctx, offerDetailID)
		if err != nil {
			if errors.Is(err, repository.ErrOfferDetailNotFound) {
				return domainerrors.ErrOfferDetailInvalid
			}

			return errors.Wrap(err, "failed to load offer detail for order creation")
		}

		// Resolve the business side through the owning offer.
		offer, err := offerRepo.FindByID(ctx, detail.OfferID)
		if err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				return domainerrors.ErrOfferDetailInvalid
			}

			return errors.Wrap(err, "failed to load owning offer for order creation")
		}

		order := entity.NewOrderFromDetail(actorID, offer.UserID, detail)
		order.Status = srv.machine.InitialStatus()

		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		created = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order creation rejected", slog.Any("userID", actorID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Order created", slog.Any("orderID", created.ID))

	return created, nil
}

// ListOrders retrieves all orders in which the actor is a party.
func (srv *orderService) ListOrders(ctx context.Context, actorID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, actorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateOrderStatus moves the order to the status carried by the patch. The
// status machine decides admissibility; load, decision and write share one
// transaction.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, actorID, orderID uuid.UUID, patch guard.OrderStatusPatch) (*entity.Order, error) {
	var updated *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("order not found")
			}

			return errors.Wrap(err, "failed to load order for status update")
		}

		actor, err := repoFactory.UserRepo().FindByID(ctx, actorID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load actor for status update")
		}

		if err := srv.machine.Transition(actor, order, patch); err != nil {
			return err
		}

		order.Status = *patch.Status

		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to persist order status")
		}

		updated = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order status update rejected", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// CountInProgress counts a business user's in-progress orders.
func (srv *orderService) CountInProgress(ctx context.Context, businessUserID uuid.UUID) (int64, error) {
	return srv.countForBusiness(ctx, businessUserID, entity.OrderStatusInProgress)
}

// CountCompleted counts a business user's completed orders.
func (srv *orderService) CountCompleted(ctx context.Context, businessUserID uuid.UUID) (int64, error) {
	return srv.countForBusiness(ctx, businessUserID, entity.OrderStatusCompleted)
}

func (srv *orderService) countForBusiness(ctx context.Context, businessUserID uuid.UUID, status entity.OrderStatus) (int64, error) {
	user, err := srv.userRepo.FindByID(ctx, businessUserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, domainerrors.ErrUserNotFound
		}

		return 0, errors.Wrap(err, "failed to load business user for order count")
	}
	if !user.IsBusiness() {
		return 0, domainerrors.ErrUserNotFound.WrapMessage("no business user with this id")
	}

	count, err := srv.orderRepo.CountByBusinessAndStatus(ctx, businessUserID, status)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}
