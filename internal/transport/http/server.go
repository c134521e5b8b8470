// Package http provides the HTTP server implementation for the chat service.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/moazzaza2009/ai-chat/internal/service"
	v1 "github.com/moazzaza2009/ai-chat/internal/transport/http/v1"
)

// NewServer creates and configures the HTTP server. Signup and login are
// public; the chat routes sit behind the bearer-token middleware.
func NewServer(svc *service.Service) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Handlers
	handler := v1.NewHandler(svc)
	handler.RegisterRoutes(e)

	return e
}
