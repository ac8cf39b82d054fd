package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
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

// OfferHandler holds dependencies for offer-related handlers.
type OfferHandler struct {
	uc     usecase.OfferUsecase
	logger *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler, injected by Fx.
func NewOfferHandler(uc usecase.OfferUsecase, logger *slog.Logger) *OfferHandler {
	return &OfferHandler{
		uc:     uc,
		logger: logger,
	}
}

type offerDetailRequest struct {
	Title              string   `json:"title" validate:"required"`
	Revisions          int      `json:"revisions" validate:"min=0"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days" validate:"required,min=1"`
	Price              int      `json:"price" validate:"min=0"`
	Features           []string `json:"features" validate:"required,min=1"`
	OfferType          string   `json:"offer_type" validate:"required"`
}

type createOfferRequest struct {
	Title       string               `json:"title" validate:"required"`
	Image       string               `json:"image"`
	Description string               `json:"description" validate:"required"`
	Details     []offerDetailRequest `json:"details" validate:"required"`
}

type offerDetailResponse struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Revisions          int       `json:"revisions"`
	DeliveryTimeInDays int       `json:"delivery_time_in_days"`
	Price              int       `json:"price"`
	Features           []string  `json:"features"`
	OfferType          string    `json:"offer_type"`
}

type offerResponse struct {
	ID              uuid.UUID             `json:"id"`
	UserID          uuid.UUID             `json:"user"`
	Title           string                `json:"title"`
	Image           string                `json:"image,omitempty"`
	Description     string                `json:"description"`
	Details         []offerDetailResponse `json:"details"`
	MinPrice        int                   `json:"min_price"`
	MinDeliveryTime int                   `json:"min_delivery_time"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

type offerListResponse struct {
	Count    int64           `json:"count"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Results  []offerResponse `json:"results"`
}

func toOfferDetailResponse(detail *entity.OfferDetail) offerDetailResponse {
	return offerDetailResponse{
		ID:                 detail.ID,
		Title:              detail.Title,
		Revisions:          detail.Revisions,
		DeliveryTimeInDays: detail.DeliveryTimeInDays,
		Price:              detail.Price,
		Features:           detail.Features,
		OfferType:          detail.OfferType.String(),
	}
}

func toOfferResponse(offer *entity.Offer) offerResponse {
	details := make([]offerDetailResponse, 0, len(offer.Details))
	for i := range offer.Details {
		details = append(details, toOfferDetailResponse(&offer.Details[i]))
	}

	return offerResponse{
		ID:              offer.ID,
		UserID:          offer.UserID,
		Title:           offer.Title,
		Image:           offer.Image,
		Description:     offer.Description,
		Details:         details,
		MinPrice:        offer.MinPrice(),
		MinDeliveryTime: offer.MinDeliveryTime(),
		CreatedAt:       offer.CreatedAt,
		UpdatedAt:       offer.UpdatedAt,
	}
}

// CreateOffer handles the request to publish a new offer.
func (h *OfferHandler) CreateOffer(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req createOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	details := make([]guard.DetailDraft, 0, len(req.Details))
	for _, d := range req.Details {
		details = append(details, guard.DetailDraft{
			Title:              d.Title,
			Revisions:          d.Revisions,
			DeliveryTimeInDays: d.DeliveryTimeInDays,
			Price:              d.Price,
			Features:           d.Features,
			OfferType:          entity.OfferType(d.OfferType),
		})
	}

	offer, err := h.uc.CreateOffer(c.Request().Context(), actor, usecase.CreateOfferInput{
		Title:       req.Title,
		Image:       req.Image,
		Description: req.Description,
		Details:     details,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOfferResponse(offer), "Offer created successfully")
}

// ListOffers handles the request to list offers with filters and paging.
func (h *OfferHandler) ListOffers(c echo.Context) error {
	input := usecase.ListOffersInput{
		Search:   c.QueryParam("search"),
		Ordering: c.QueryParam("ordering"),
	}

	if raw := c.QueryParam("creator_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("invalid creator_id")
		}
		input.CreatorID = &id
	}
	if raw := c.QueryParam("min_price"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("invalid min_price")
		}
		input.MinPrice = &v
	}
	if raw := c.QueryParam("max_delivery_time"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("invalid max_delivery_time")
		}
		input.MaxDeliveryTime = &v
	}
	if raw := c.QueryParam("page"); raw != "" {
		input.Page, _ = strconv.Atoi(raw)
	}
	if raw := c.QueryParam("page_size"); raw != "" {
		input.PageSize, _ = strconv.Atoi(raw)
	}

	output, err := h.uc.ListOffers(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	results := make([]offerResponse, 0, len(output.Offers))
	for _, offer := range output.Offers {
		results = append(results, toOfferResponse(offer))
	}

	return response.Success(c, http.StatusOK, offerListResponse{
		Count:    output.Total,
		Page:     output.Page,
		PageSize: output.PageSize,
		Results:  results,
	}, "Offers retrieved successfully")
}

// GetOffer handles the request to read one offer. Public.
func (h *OfferHandler) GetOffer(c echo.Context) error {
	offerID, err := pathUUID(c, "pk")
	if err != nil {
		return err
	}

	offer, err := h.uc.GetOffer(c.Request().Context(), offerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOfferResponse(offer), "Offer retrieved successfully")
}

// GetOfferDetail handles the request to read one pricing tier. Public.
func (h *OfferHandler) GetOfferDetail(c echo.Context) error {
	detailID, err := pathUUID(c, "pk")
	if err != nil {
		return err
	}

	detail, err := h.uc.GetOfferDetail(c.Request().Context(), detailID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOfferDetailResponse(detail), "Offer detail retrieved successfully")
}

// UpdateOffer handles a partial offer update. Detail patches are keyed by
// offer_type; only the fields present in the payload are touched.
func (h *OfferHandler) UpdateOffer(c echo.Context) error {
	offerID, err := pathUUID(c, "pk")
	if err != nil {
		return err
	}

	actor, err := actorID(c)
	if err != nil {
		return err
	}

	patch, err := parseOfferPatch(c)
	if err != nil {
		return err
	}

	offer, err := h.uc.UpdateOffer(c.Request().Context(), actor, offerID, patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOfferResponse(offer), "Offer updated successfully")
}

// DeleteOffer handles the request to remove an offer.
func (h *OfferHandler) DeleteOffer(c echo.Context) error {
	offerID, err := pathUUID(c, "pk")
	if err != nil {
		return err
	}

	actor, err := actorID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteOffer(c.Request().Context(), actor, offerID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// parseOfferPatch decodes the raw patch payload into the typed form the
// reconciler consumes. Absent keys stay nil so the merge leaves them alone.
func parseOfferPatch(c echo.Context) (guard.OfferPatch, error) {
	var raw struct {
		Title       *string           `json:"title"`
		Image       *string           `json:"image"`
		Description *string           `json:"description"`
		Details     []json.RawMessage `json:"details"`
	}
	if err := json.NewDecoder(c.Request().Body).Decode(&raw); err != nil {
		return guard.OfferPatch{}, domainerrors.ErrValidationFailed.WithDetails("invalid offer patch payload")
	}

	patch := guard.OfferPatch{
		Title:       raw.Title,
		Image:       raw.Image,
		Description: raw.Description,
	}

	for _, rawDetail := range raw.Details {
		var d struct {
			OfferType          *string  `json:"offer_type"`
			Title              *string  `json:"title"`
			Revisions          *int     `json:"revisions"`
			DeliveryTimeInDays *int     `json:"delivery_time_in_days"`
			Price              *int     `json:"price"`
			Features           []string `json:"features"`
		}
		if err := json.Unmarshal(rawDetail, &d); err != nil {
			return guard.OfferPatch{}, domainerrors.ErrValidationFailed.WithDetails("invalid detail patch payload")
		}

		dp := guard.DetailPatch{
			Title:              d.Title,
			Revisions:          d.Revisions,
			DeliveryTimeInDays: d.DeliveryTimeInDays,
			Price:              d.Price,
			Features:           d.Features,
		}
		if d.OfferType != nil {
			offerType := entity.OfferType(*d.OfferType)
			dp.OfferType = &offerType
		}

		patch.Details = append(patch.Details, dp)
	}

	return patch, nil
}
