package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/moazzaza2009/ai-chat/internal/domain"
)

// Signup registers a new account.
// POST /api/signup
func (h *Handler) Signup(c echo.Context) error {
	var req domain.SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "Invalid request body"})
	}
	if msg := validateCredentials(req.Email, req.Password); msg != "" {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: msg})
	}

	token, err := h.service.Signup(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "Email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: "Signup failed"})
	}

	return c.JSON(http.StatusCreated, domain.AuthResponse{Token: token})
}

// Login exchanges credentials for a session token.
// POST /api/login
func (h *Handler) Login(c echo.Context) error {
	var req domain.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "Invalid request body"})
	}
	if msg := validateCredentials(req.Email, req.Password); msg != "" {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: msg})
	}

	token, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "User not found"})
		}
		if errors.Is(err, domain.ErrInvalidCredential) {
			return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "Incorrect password"})
		}
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: "Login failed"})
	}

	return c.JSON(http.StatusOK, domain.AuthResponse{Token: token})
}

func validateCredentials(email, password string) string {
	if strings.TrimSpace(email) == "" {
		return "Email is required"
	}
	if password == "" {
		return "Password is required"
	}
	return ""
}
