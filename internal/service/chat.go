package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/moazzaza2009/ai-chat/internal/adapter/llm"
	"github.com/moazzaza2009/ai-chat/internal/domain"
)

// titleLimit is how many characters of the first user message become the
// conversation title.
const titleLimit = 30

// ListChats returns the caller's conversations, newest-created-first.
func (s *Service) ListChats(ctx context.Context, userID string) ([]domain.Conversation, error) {
	conversations, err := s.store.ListConversationsByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return conversations, nil
}

// SendMessage appends a user turn, relays the full history to the completion
// gateway, and appends the reply. With an empty conversationID a new
// conversation is created for the caller; a given id that is absent or owned
// by someone else fails with domain.ErrNotFound.
//
// On gateway failure the user turn stays persisted unless RollbackFailedTurns
// is set; no assistant turn is stored either way.
func (s *Service) SendMessage(ctx context.Context, userID, content, conversationID string) (*domain.Conversation, error) {
	conv, err := s.resolveConversation(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	userMsg := &domain.Message{
		ID:             "msg_" + uuid.New().String(),
		ConversationID: conv.ID,
		Role:           domain.RoleUser,
		Content:        content,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.store.AppendMessage(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("failed to append user message: %w", err)
	}

	history := make([]llm.ChatMessage, 0, len(conv.Messages)+1)
	for _, m := range conv.Messages {
		history = append(history, llm.ChatMessage{Role: string(m.Role), Content: m.Content})
	}
	history = append(history, llm.ChatMessage{Role: string(userMsg.Role), Content: userMsg.Content})

	reply, err := s.completions.Complete(ctx, history)
	if err != nil {
		if s.config.RollbackFailedTurns {
			if delErr := s.store.DeleteMessage(ctx, userMsg.ID); delErr != nil {
				log.Printf("WARN: failed to roll back user message %s: %v", userMsg.ID, delErr)
			}
		}
		return nil, err
	}

	assistantMsg := &domain.Message{
		ID:             "msg_" + uuid.New().String(),
		ConversationID: conv.ID,
		Role:           domain.RoleAssistant,
		Content:        reply.Content,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.store.AppendMessage(ctx, assistantMsg); err != nil {
		return nil, fmt.Errorf("failed to append assistant message: %w", err)
	}

	if conv.Title == "" {
		if err := s.store.SetTitleIfEmpty(ctx, conv.ID, truncateTitle(content)); err != nil {
			return nil, fmt.Errorf("failed to set title: %w", err)
		}
	}

	updated, err := s.store.GetConversationForOwner(ctx, conv.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload conversation: %w", err)
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return updated, nil
}

func (s *Service) resolveConversation(ctx context.Context, userID, conversationID string) (*domain.Conversation, error) {
	if conversationID != "" {
		conv, err := s.store.GetConversationForOwner(ctx, conversationID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up conversation: %w", err)
		}
		if conv == nil {
			return nil, domain.ErrNotFound
		}
		return conv, nil
	}

	conv := &domain.Conversation{
		ID:        "conv_" + uuid.New().String(),
		OwnerID:   userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateConversation(ctx, conv); err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return conv, nil
}

// truncateTitle keeps the leading characters of the first message, counted
// in runes so multi-byte input never splits.
func truncateTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= titleLimit {
		return content
	}
	return string(runes[:titleLimit])
}
