package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"coderr/internal/delivery/http/response"
	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile handles the request to read one user's profile. Public.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := pathUUID(c, "pk")
	if err != nil {
		return err
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile retrieved successfully")
}

// UpdateProfile handles a partial profile update. The raw payload keys are
// carried through to the guard so writes touching immutable fields are
// rejected even when the value is unchanged.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := pathUUID(c, "pk")
	if err != nil {
		return err
	}

	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&raw); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile patch input")
	}

	input := usecase.ProfilePatchInput{
		ChangedFields: make([]string, 0, len(raw)),
	}
	for key := range raw {
		input.ChangedFields = append(input.ChangedFields, key)
	}

	fields := map[string]**string{
		"first_name":    &input.FirstName,
		"last_name":     &input.LastName,
		"email":         &input.Email,
		"file":          &input.File,
		"location":      &input.Location,
		"tel":           &input.Tel,
		"description":   &input.Description,
		"working_hours": &input.WorkingHours,
	}
	for key, dst := range fields {
		value, ok := raw[key]
		if !ok {
			continue
		}

		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("field " + key + " must be a string")
		}
		*dst = &s
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), actor, userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile updated successfully")
}

// ListBusinessProfiles handles the request to list all business profiles.
func (h *ProfileHandler) ListBusinessProfiles(c echo.Context) error {
	return h.listByType(c, entity.ProfileTypeBusiness)
}

// ListCustomerProfiles handles the request to list all customer profiles.
func (h *ProfileHandler) ListCustomerProfiles(c echo.Context) error {
	return h.listByType(c, entity.ProfileTypeCustomer)
}

func (h *ProfileHandler) listByType(c echo.Context, profileType entity.ProfileType) error {
	users, err := h.uc.ListByType(c.Request().Context(), profileType)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]userResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, resp, "Profiles retrieved successfully")
}
