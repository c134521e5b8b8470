package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/moazzaza2009/ai-chat/internal/domain"
)

// Signup registers a new account and returns a session token. A second
// signup with the same email fails with domain.ErrDuplicateEmail; the store's
// unique constraint decides the winner under concurrency.
func (s *Service) Signup(ctx context.Context, email, password string) (string, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           "usr_" + uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// Login verifies the credentials and returns a fresh session token. An
// unknown email fails with domain.ErrNotFound, a wrong password with
// domain.ErrInvalidCredential.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return "", domain.ErrNotFound
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return "", domain.ErrInvalidCredential
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// Authenticate resolves a session token to the user id it was issued for.
// Tokens that do not verify, or whose subject no longer exists, fail with
// domain.ErrInvalidToken.
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return "", err
	}
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return "", domain.ErrInvalidToken
	}
	return user.ID, nil
}
