// Package store defines the storage interface and implementations.
package store

import (
	"context"

	"github.com/moazzaza2009/ai-chat/internal/domain"
)

// Store defines the interface for data persistence. Lookup methods return
// (nil, nil) when the record is absent.
type Store interface {
	// User operations
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// Conversation operations
	CreateConversation(ctx context.Context, conversation *domain.Conversation) error
	GetConversationForOwner(ctx context.Context, conversationID, ownerID string) (*domain.Conversation, error)
	ListConversationsByOwner(ctx context.Context, ownerID string) ([]domain.Conversation, error)
	SetTitleIfEmpty(ctx context.Context, conversationID, title string) error

	// Message operations
	AppendMessage(ctx context.Context, message *domain.Message) error
	DeleteMessage(ctx context.Context, messageID string) error

	// Lifecycle
	Close() error
}
