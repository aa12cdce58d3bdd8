package handler

import (
	"log/slog"
	"net/http"

	"passmanager/internal/delivery/api/response"
	"passmanager/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PasswordHandler serves the /api/pass-manager routes.
type PasswordHandler struct {
	uc     usecase.PasswordUsecase
	logger *slog.Logger
}

// NewPasswordHandler is the constructor for PasswordHandler, injected by Fx.
func NewPasswordHandler(uc usecase.PasswordUsecase, logger *slog.Logger) *PasswordHandler {
	return &PasswordHandler{
		uc:     uc,
		logger: logger,
	}
}

type addPasswordRequest struct {
	Username        string `json:"username" validate:"required,max=100"`
	Password        string `json:"password" validate:"required"`
	ServiceName     string `json:"serviceName" validate:"required,max=255"`
	ServicePassword string `json:"servicePassword" validate:"required"`
}

type listPasswordsRequest struct {
	Username string `param:"username" json:"-" validate:"required"`
	Password string `query:"password" json:"-" validate:"required"`
}

type servicePasswordRequest struct {
	Username    string `param:"username" json:"-" validate:"required"`
	ServiceName string `param:"serviceName" json:"-" validate:"required"`
	Password    string `query:"password" json:"-" validate:"required"`
}

type updateByServiceNameRequest struct {
	ServiceName     string `param:"serviceName" json:"-" validate:"required,max=255"`
	Username        string `json:"username" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ServicePassword string `json:"servicePassword" validate:"required"`
}

type updateByIDRequest struct {
	ID              string `param:"id" json:"-" validate:"required,uuid"`
	Username        string `json:"username" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ServiceName     string `json:"serviceName" validate:"required,max=255"`
	ServicePassword string `json:"servicePassword" validate:"required"`
}

type deletePasswordRequest struct {
	ServiceName string `param:"serviceName" json:"-" validate:"required"`
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// AddPassword handles POST /api/pass-manager/add.
func (h *PasswordHandler) AddPassword(c echo.Context) error {
	var req addPasswordRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	entry, err := h.uc.AddPassword(c.Request().Context(),
		usecase.Credentials{Username: req.Username, Password: req.Password},
		&usecase.AddPasswordInput{ServiceName: req.ServiceName, ServicePassword: req.ServicePassword},
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toServicePasswordResponse(entry))
}

// GetPasswords handles GET /api/pass-manager/:username.
func (h *PasswordHandler) GetPasswords(c echo.Context) error {
	var req listPasswordsRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	entries, err := h.uc.GetPasswords(c.Request().Context(), usecase.Credentials{Username: req.Username, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	data := make([]*ServicePasswordResponse, 0, len(entries))
	for _, entry := range entries {
		data = append(data, toServicePasswordResponse(entry))
	}

	return response.Success(c, http.StatusOK, data)
}

// GetPassword handles GET /api/pass-manager/:username/:serviceName.
func (h *PasswordHandler) GetPassword(c echo.Context) error {
	var req servicePasswordRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	entry, err := h.uc.GetPassword(c.Request().Context(),
		usecase.Credentials{Username: req.Username, Password: req.Password}, req.ServiceName)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toServicePasswordResponse(entry))
}

// ExportPasswordQR handles GET /api/pass-manager/:username/:serviceName/qr.
func (h *PasswordHandler) ExportPasswordQR(c echo.Context) error {
	var req servicePasswordRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	png, err := h.uc.ExportPasswordQR(c.Request().Context(),
		usecase.Credentials{Username: req.Username, Password: req.Password}, req.ServiceName)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.PNG(c, png)
}

// UpdatePasswordByServiceName handles PUT /api/pass-manager/update/:serviceName.
func (h *PasswordHandler) UpdatePasswordByServiceName(c echo.Context) error {
	var req updateByServiceNameRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	entry, err := h.uc.UpdatePasswordByServiceName(c.Request().Context(),
		usecase.Credentials{Username: req.Username, Password: req.Password}, req.ServiceName, req.ServicePassword)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toServicePasswordResponse(entry))
}

// UpdatePassword handles PUT /api/pass-manager/update/id/:id.
func (h *PasswordHandler) UpdatePassword(c echo.Context) error {
	var req updateByIDRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	// Already checked by the uuid validation rule.
	entryID := uuid.MustParse(req.ID)

	entry, err := h.uc.UpdatePassword(c.Request().Context(),
		usecase.Credentials{Username: req.Username, Password: req.Password},
		entryID,
		&usecase.UpdatePasswordInput{ServiceName: req.ServiceName, ServicePassword: req.ServicePassword},
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toServicePasswordResponse(entry))
}

// DeletePassword handles DELETE /api/pass-manager/delete/:serviceName.
func (h *PasswordHandler) DeletePassword(c echo.Context) error {
	var req deletePasswordRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	err := h.uc.DeletePassword(c.Request().Context(),
		usecase.Credentials{Username: req.Username, Password: req.Password}, req.ServiceName)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil)
}
