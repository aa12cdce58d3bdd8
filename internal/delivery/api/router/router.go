// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"passmanager/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	PasswordHandler *handler.PasswordHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	passwordHandler *handler.PasswordHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		passwordHandler: params.PasswordHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes. Credentials are checked per call, there are no sessions.
	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.GET("/users", r.userHandler.GetAllUsers)
		authGroup.POST("/get-user/:username", r.userHandler.GetUserByUsername)
		authGroup.POST("/update-user/:username", r.userHandler.UpdateUser)
		authGroup.DELETE("/delete-user/:username", r.userHandler.DeleteUser)
	}

	// Stored service passwords
	passGroup := e.Group("/api/pass-manager")
	{
		passGroup.POST("/add", r.passwordHandler.AddPassword)
		passGroup.PUT("/update/id/:id", r.passwordHandler.UpdatePassword)
		passGroup.PUT("/update/:serviceName", r.passwordHandler.UpdatePasswordByServiceName)
		passGroup.DELETE("/delete/:serviceName", r.passwordHandler.DeletePassword)
		passGroup.GET("/:username", r.passwordHandler.GetPasswords)
		passGroup.GET("/:username/:serviceName", r.passwordHandler.GetPassword)
		passGroup.GET("/:username/:serviceName/qr", r.passwordHandler.ExportPasswordQR)
	}
}
