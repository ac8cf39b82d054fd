package handler

import (
	"net/http"

	"coderr/internal/delivery/http/response"
	"coderr/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InfoHandler holds dependencies for the public statistics handler.
type InfoHandler struct {
	uc usecase.InfoUsecase
}

// NewInfoHandler is the constructor for InfoHandler, injected by Fx.
func NewInfoHandler(uc usecase.InfoUsecase) *InfoHandler {
	return &InfoHandler{uc: uc}
}

type baseInfoResponse struct {
	ReviewCount          int64   `json:"review_count"`
	AverageRating        float64 `json:"average_rating"`
	BusinessProfileCount int64   `json:"business_profile_count"`
	OfferCount           int64   `json:"offer_count"`
}

// BaseInfo handles the request for the public platform statistics.
func (h *InfoHandler) BaseInfo(c echo.Context) error {
	output, err := h.uc.BaseInfo(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, baseInfoResponse{
		ReviewCount:          output.ReviewCount,
		AverageRating:        output.AverageRating,
		BusinessProfileCount: output.BusinessProfileCount,
		OfferCount:           output.OfferCount,
	}, "Base info retrieved successfully")
}
