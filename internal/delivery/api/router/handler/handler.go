// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"passmanager/internal/delivery/api/response"
	"passmanager/internal/domain/entity"
	domainerrors "passmanager/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var binder = &echo.DefaultBinder{}

// bindRequest fills req from path params, query params and the JSON body, in
// that order, and then runs the registered validator. Query params are bound
// for every method because credentials travel in the query string.
// Failures are returned for the HTTP error handler to render.
func bindRequest(c echo.Context, req any) error {
	if err := binder.BindPathParams(c, req); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidInput.WithDetails("invalid path parameters"), err.Error())
	}
	if err := binder.BindQueryParams(c, req); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidInput.WithDetails("invalid query parameters"), err.Error())
	}
	if err := binder.BindBody(c, req); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidInput.WithDetails("invalid request body"), err.Error())
	}

	return c.Validate(req)
}

// UserResponse is the public view of an account. The password hash is never exposed.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ServicePasswordResponse is the wire form of a stored entry.
type ServicePasswordResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	ServiceName string    `json:"serviceName"`
	Password    string    `json:"password"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toServicePasswordResponse(entry *entity.ServicePassword) *ServicePasswordResponse {
	return &ServicePasswordResponse{
		ID:          entry.ID,
		Username:    entry.Username,
		ServiceName: entry.ServiceName,
		Password:    entry.Password,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
