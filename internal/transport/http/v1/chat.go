package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/moazzaza2009/ai-chat/internal/domain"
)

// ListChats retrieves the caller's conversations, newest first.
// GET /api/chats
func (h *Handler) ListChats(c echo.Context) error {
	chats, err := h.service.ListChats(c.Request().Context(), callerID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: "Failed to list chats"})
	}
	if chats == nil {
		chats = []domain.Conversation{}
	}
	return c.JSON(http.StatusOK, domain.ListChatsResponse{Chats: chats})
}

// SendMessage relays a chat message and returns the updated conversation.
// POST /api/chat
func (h *Handler) SendMessage(c echo.Context) error {
	var req domain.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "Invalid request body"})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "Message is required"})
	}

	chat, err := h.service.SendMessage(c.Request().Context(), callerID(c), req.Message, req.ConversationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, domain.ErrorResponse{Error: "Chat not found"})
		}
		var gatewayErr *domain.GatewayError
		if errors.As(err, &gatewayErr) {
			msg := "Completion request failed"
			if gatewayErr.Status != 0 {
				msg = fmt.Sprintf("Completion request failed (upstream status %d)", gatewayErr.Status)
			}
			return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: msg})
		}
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: "Failed to send message"})
	}

	return c.JSON(http.StatusOK, domain.ChatResponse{Chat: chat})
}
