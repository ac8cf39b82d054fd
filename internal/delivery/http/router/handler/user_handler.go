package handler

import (
	"log/slog"
	"net/http"
	"time"

	"coderr/internal/delivery/http/response"
	"coderr/internal/domain/entity"
	"coderr/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Username         string `json:"username" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
	RepeatedPassword string `json:"repeated_password" validate:"required"`
	Type             string `json:"type" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	AccessToken  string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Type         string    `json:"type,omitempty"`
}

func toAuthResponse(output *usecase.AuthOutput) authResponse {
	resp := authResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		UserID:       output.User.ID,
		Username:     output.User.Username,
		Email:        output.User.Email,
	}
	if output.User.Profile != nil {
		resp.Type = output.User.Profile.Type.String()
	}

	return resp
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Username:         req.Username,
		Email:            req.Email,
		Password:         req.Password,
		RepeatedPassword: req.RepeatedPassword,
		Type:             entity.ProfileType(req.Type),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAuthResponse(output), "Account registered successfully")
}

// Login handles the login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output), "Login successful")
}

// userResponse is the public rendering of a user and their profile. The
// password hash never leaves the process.
type userResponse struct {
	ID           uuid.UUID `json:"user"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Type         string    `json:"type,omitempty"`
	File         string    `json:"file,omitempty"`
	Location     string    `json:"location,omitempty"`
	Tel          string    `json:"tel,omitempty"`
	Description  string    `json:"description,omitempty"`
	WorkingHours string    `json:"working_hours,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toUserResponse(user *entity.User) userResponse {
	resp := userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
	}
	if user.Profile != nil {
		resp.Type = user.Profile.Type.String()
		resp.File = user.Profile.File
		resp.Location = user.Profile.Location
		resp.Tel = user.Profile.Tel
		resp.Description = user.Profile.Description
		resp.WorkingHours = user.Profile.WorkingHours
	}

	return resp
}
