package v1

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/moazzaza2009/ai-chat/internal/adapter/llm"
	"github.com/moazzaza2009/ai-chat/internal/auth"
	"github.com/moazzaza2009/ai-chat/internal/config"
	"github.com/moazzaza2009/ai-chat/internal/service"
	"github.com/moazzaza2009/ai-chat/tests/helpers"
)

// newTestServer wires a full echo instance, routes and middleware included,
// against an in-memory store and the given completion client.
func newTestServer(t *testing.T, mock *llm.MockClient) *echo.Echo {
	t.Helper()

	db := helpers.NewTestSQLiteStore(t)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	hasher := auth.NewHasher(4)
	svc := service.New(db, mock, tokens, hasher, &config.Config{})

	e := echo.New()
	e.HideBanner = true
	NewHandler(svc).RegisterRoutes(e)
	return e
}

func doJSON(e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeToken(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode token response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected a token, got body %s", rec.Body.String())
	}
	return resp.Token
}
