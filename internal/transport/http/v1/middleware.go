package v1

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/moazzaza2009/ai-chat/internal/domain"
	"github.com/moazzaza2009/ai-chat/internal/service"
)

// userIDKey is the echo context key the middleware stores the caller id under.
const userIDKey = "user_id"

// RequireAuth resolves the Authorization bearer token to a user id and stores
// it in the request context. A missing token and an invalid one get distinct
// 401 messages; nothing past the middleware runs in either case.
func RequireAuth(svc *service.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, domain.ErrorResponse{Error: "No token"})
			}

			userID, err := svc.Authenticate(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, domain.ErrorResponse{Error: "Invalid token"})
			}

			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// callerID returns the user id stored by RequireAuth.
func callerID(c echo.Context) string {
	userID, _ := c.Get(userIDKey).(string)
	return userID
}
