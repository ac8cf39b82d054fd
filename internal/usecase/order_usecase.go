package usecase

import (
	"context"

	"coderr/internal/domain/entity"
	"coderr/internal/domain/guard"

	"github.com/google/uuid"
)

// OrderUsecase defines the interface for order-related business operations.
type OrderUsecase interface {
	// CreateOrder places an order for the given offer detail on behalf of
	// the acting customer, snapshotting the detail's commercial terms.
	CreateOrder(ctx context.Context, actorID, offerDetailID uuid.UUID) (*entity.Order, error)

	// ListOrders retrieves all orders in which the actor is a party.
	ListOrders(ctx context.Context, actorID uuid.UUID) ([]*entity.Order, error)

	// UpdateOrderStatus moves the order to a new status on behalf of the actor.
	UpdateOrderStatus(ctx context.Context, actorID, orderID uuid.UUID, patch guard.OrderStatusPatch) (*entity.Order, error)

	// CountInProgress counts a business user's in-progress orders.
	CountInProgress(ctx context.Context, businessUserID uuid.UUID) (int64, error)

	// CountCompleted counts a business user's completed orders.
	CountCompleted(ctx context.Context, businessUserID uuid.UUID) (int64, error)
}
