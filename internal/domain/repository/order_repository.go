package repository

import (
	"context"
	"errors"

	"coderr/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists a new order with its commercial snapshot.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByUser retrieves all orders in which the user is a party,
	// as customer or as business.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// Update saves the order. Only the status ever changes after creation.
	Update(ctx context.Context, order *entity.Order) error

	// CountByBusinessAndStatus counts orders for a business user in a status.
	CountByBusinessAndStatus(ctx context.Context, businessUserID uuid.UUID, status entity.OrderStatus) (int64, error)
}
