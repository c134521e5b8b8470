// Package service implements the application services: account handling and
// the chat relay orchestration.
package service

import (
	"github.com/moazzaza2009/ai-chat/internal/adapter/llm"
	"github.com/moazzaza2009/ai-chat/internal/auth"
	"github.com/moazzaza2009/ai-chat/internal/config"
	"github.com/moazzaza2009/ai-chat/internal/repository"
)

type Service struct {
	store       store.Store
	completions llm.CompletionClient
	tokens      *auth.TokenManager
	hasher      *auth.Hasher
	config      *config.Config
}

func New(db store.Store, completions llm.CompletionClient, tokens *auth.TokenManager, hasher *auth.Hasher, cfg *config.Config) *Service {
	return &Service{
		store:       db,
		completions: completions,
		tokens:      tokens,
		hasher:      hasher,
		config:      cfg,
	}
}
