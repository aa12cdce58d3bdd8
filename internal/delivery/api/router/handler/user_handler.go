package handler

import (
	"log/slog"
	"net/http"

	"passmanager/internal/delivery/api/response"
	"passmanager/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
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
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
}

type userCredentialsRequest struct {
	Username string `param:"username" json:"-" validate:"required"`
	Password string `query:"password" json:"-" validate:"required"`
}

type updateUserRequest struct {
	Username    string `param:"username" json:"-" validate:"required"`
	OldPassword string `query:"oldPassword" json:"-" validate:"required"`
	NewPassword string `query:"newPassword" json:"-" validate:"required"`
}

// RegisterUser handles the user registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req registerRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	user, err := h.uc.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// GetAllUsers handles GET /api/auth/users.
func (h *UserHandler) GetAllUsers(c echo.Context) error {
	users, err := h.uc.GetAllUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	data := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		data = append(data, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, data)
}

// GetUserByUsername answers with the user or null data when the credentials do not match.
func (h *UserHandler) GetUserByUsername(c echo.Context) error {
	var req userCredentialsRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	user, err := h.uc.GetUserByUsername(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// UpdateUser handles POST /api/auth/update-user/:username.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), req.Username, req.OldPassword, &usecase.UpdateUserInput{
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// DeleteUser handles DELETE /api/auth/delete-user/:username.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	var req userCredentialsRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	if err := h.uc.DeleteUser(c.Request().Context(), req.Username, req.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil)
}
