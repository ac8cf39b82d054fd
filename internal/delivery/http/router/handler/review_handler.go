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

// ReviewHandler holds dependencies for review-related handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

type createReviewRequest struct {
	BusinessUserID uuid.UUID `json:"business_user" validate:"required"`
	Rating         int       `json:"rating" validate:"required,min=1,max=5"`
	Description    string    `json:"description" validate:"required"`
}

type reviewResponse struct {
	ID             uuid.UUID `json:"id"`
	BusinessUserID uuid.UUID `json:"business_user"`
	ReviewerID     uuid.UUID `json:"reviewer"`
	Rating         int       `json:"rating"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toReviewResponse(review *entity.Review) reviewResponse {
	return reviewResponse{
		ID:             review.ID,
		BusinessUserID: review.BusinessUserID,
		ReviewerID:     review.ReviewerID,
		Rating:         review.Rating,
		Description:    review.Description,
		CreatedAt:      review.CreatedAt,
		UpdatedAt:      review.UpdatedAt,
	}
}

// CreateReview handles the request to review a business user.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.uc.CreateReview(c.Request().Context(), actor, usecase.CreateReviewInput{
		BusinessUserID: req.BusinessUserID,
		Rating:         req.Rating,
		Description:    req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReviewResponse(review), "Review created successfully")
}

// ListReviews handles the request to list reviews with filters.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	input := usecase.ListReviewsInput{
		Ordering: c.QueryParam("ordering"),
	}

	if raw := c.QueryParam("business_user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("invalid business_user_id")
		}
		input.BusinessUserID = &id
	}
	if raw := c.QueryParam("reviewer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("invalid reviewer_id")
		}
		input.ReviewerID = &id
	}

	reviews, err := h.uc.ListReviews(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]reviewResponse, 0, len(reviews))
	for _, review := range reviews {
		resp = append(resp, toReviewResponse(review))
	}

	return response.Success(c, http.StatusOK, resp, "Reviews retrieved successfully")
}

// UpdateReview handles a partial review update. Identity keys found in the
// payload are carried to the guard as forbidden fields.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	reviewID, err := pathUUID(c, "pk")
	if err != nil {
		return err
	}

	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&raw); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review patch input")
	}

	var patch guard.ReviewPatch
	for key, value := range raw {
		switch key {
		case "rating":
			var rating int
			if err := json.Unmarshal(value, &rating); err != nil {
				return domainerrors.ErrValidationFailed.WithDetails("field rating must be an integer")
			}
			patch.Rating = &rating
		case "description":
			var description string
			if err := json.Unmarshal(value, &description); err != nil {
				return domainerrors.ErrValidationFailed.WithDetails("field description must be a string")
			}
			patch.Description = &description
		default:
			patch.Forbidden = append(patch.Forbidden, key)
		}
	}

	review, err := h.uc.UpdateReview(c.Request().Context(), actor, reviewID, patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReviewResponse(review), "Review updated successfully")
}

// DeleteReview handles the request to remove a review.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	reviewID, err := pathUUID(c, "pk")
	if err != nil {
		return err
	}

	actor, err := actorID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteReview(c.Request().Context(), actor, reviewID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
