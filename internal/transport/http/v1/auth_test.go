package v1

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moazzaza2009/ai-chat/internal/adapter/llm"
	"github.com/moazzaza2009/ai-chat/internal/domain"
)

func TestSignup(t *testing.T) {
	e := newTestServer(t, llm.NewMockClient())

	t.Run("Success", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/signup", "", domain.SignupRequest{Email: "a@x.com", Password: "pw1"})
		assert.Equal(t, http.StatusCreated, rec.Code)
		decodeToken(t, rec)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/signup", "", domain.SignupRequest{Email: "a@x.com", Password: "pw2"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Email already registered")
	})

	t.Run("Missing Email", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/signup", "", domain.SignupRequest{Password: "pw1"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Missing Password", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/signup", "", domain.SignupRequest{Email: "b@x.com"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	e := newTestServer(t, llm.NewMockClient())

	rec := doJSON(e, http.MethodPost, "/api/signup", "", domain.SignupRequest{Email: "a@x.com", Password: "pw1"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	t.Run("Success", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/login", "", domain.LoginRequest{Email: "a@x.com", Password: "pw1"})
		assert.Equal(t, http.StatusOK, rec.Code)
		token := decodeToken(t, rec)

		// The issued token is accepted on a protected route.
		rec = doJSON(e, http.MethodGet, "/api/chats", token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/login", "", domain.LoginRequest{Email: "missing@x.com", Password: "pw1"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "User not found")
	})

	t.Run("Wrong Password", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/login", "", domain.LoginRequest{Email: "a@x.com", Password: "nope"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Incorrect password")
	})
}

func TestHealth(t *testing.T) {
	e := newTestServer(t, llm.NewMockClient())

	rec := doJSON(e, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
