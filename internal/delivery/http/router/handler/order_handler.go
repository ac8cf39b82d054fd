package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"coderr/internal/delivery/http/response"
	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/guard"
	"coderr/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type createOrderRequest struct {
	OfferDetailID uuid.UUID `json:"offer_detail_id" validate:"required"`
}

type orderResponse struct {
	ID                 uuid.UUID `json:"id"`
	CustomerUserID     uuid.UUID `json:"customer_user"`
	BusinessUserID     uuid.UUID `json:"business_user"`
	Title              string    `json:"title"`
	Revisions          int       `json:"revisions"`
	DeliveryTimeInDays int       `json:"delivery_time_in_days"`
	Price              int       `json:"price"`
	Features           []string  `json:"features"`
	OfferType          string    `json:"offer_type"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func toOrderResponse(order *entity.Order) orderResponse {
	return orderResponse{
		ID:                 order.ID,
		CustomerUserID:     order.CustomerUserID,
		BusinessUserID:     order.BusinessUserID,
		Title:              order.Title,
		Revisions:          order.Revisions,
		DeliveryTimeInDays: order.DeliveryTimeInDays,
		Price:              order.Price,
		Features:           order.Features,
		OfferType:          order.OfferType.String(),
		Status:             order.Status.String(),
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
}

// CreateOrder handles the request to place an order against an offer detail.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), actor, req.OfferDetailID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order), "Order created successfully")
}

// ListOrders handles the request to list the actor's orders, both sides.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, toOrderResponse(order))
	}

	return response.Success(c, http.StatusOK, resp, "Orders retrieved successfully")
}

// UpdateOrderStatus handles an order status transition. A status patch must
// touch the status field and nothing else; any other supplied key is passed
// to the machine as a forbidden field.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := pathUUID(c, "pk")
	if err != nil {
		return err
	}

	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&raw); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status patch input")
	}

	var patch guard.OrderStatusPatch
	for key, value := range raw {
		if key != "status" {
			patch.Extra = append(patch.Extra, key)

			continue
		}

		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("field status must be a string")
		}
		status := entity.OrderStatus(s)
		patch.Status = &status
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), actor, orderID, patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "Order status updated successfully")
}

// CountInProgress handles the request to count a business user's in-progress orders.
func (h *OrderHandler) CountInProgress(c echo.Context) error {
	businessUserID, err := pathUUID(c, "business_user_id")
	if err != nil {
		return err
	}

	count, err := h.uc.CountInProgress(c.Request().Context(), businessUserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"order_count": count}, "Order count retrieved successfully")
}

// CountCompleted handles the request to count a business user's completed orders.
func (h *OrderHandler) CountCompleted(c echo.Context) error {
	businessUserID, err := pathUUID(c, "business_user_id")
	if err != nil {
		return err
	}

	count, err := h.uc.CountCompleted(c.Request().Context(), businessUserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"completed_order_count": count}, "Order count retrieved successfully")
}
