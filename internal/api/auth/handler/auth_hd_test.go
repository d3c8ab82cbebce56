package authHandler

import (
	"FinanceTracker/internal/api/auth"
	authRepository "FinanceTracker/internal/api/auth/repository"
	authService "FinanceTracker/internal/api/auth/service"
	"FinanceTracker/internal/middleware"
	"FinanceTracker/pkg/bcrypt"
	"FinanceTracker/pkg/kvstore"
	"FinanceTracker/pkg/log"
	"FinanceTracker/pkg/utils"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	logger := log.NewDiscardLogger()
	m := middleware.NewWithRate(logger, rate.Inf, 1)
	svc := authService.New(logger, authRepository.NewKV(kvstore.NewMemory(0), logger), bcrypt.NewWithCost(4), utils.New())

	app := fiber.New()
	app.Use(m.NewRequestIDMiddleware())
	New(logger, svc, validator.New(), m).Start(app.Group("/api/v1"))
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body, token string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, raw
}

func TestRegisterLoginMe(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodPost, "/api/v1/auth/register", `{"email":"Ana@Example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusCreated, status, string(raw))

	var registered auth.LoginUserResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &registered))
	assert.NotEmpty(t, registered.AccessToken)
	assert.Equal(t, "ana@example.com", registered.User.Email)
	assert.NotContains(t, string(raw), "secret1")

	status, _ = do(t, app, http.MethodPost, "/api/v1/auth/register", `{"email":"ana@example.com","password":"another"}`, "")
	assert.Equal(t, http.StatusConflict, status)

	status, _ = do(t, app, http.MethodPost, "/api/v1/auth/login", `{"email":"ana@example.com","password":"wrong!!"}`, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = do(t, app, http.MethodPost, "/api/v1/auth/login", `{"email":"nobody@example.com","password":"secret1"}`, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, raw = do(t, app, http.MethodPost, "/api/v1/auth/login", `{"email":"ana@example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, status, string(raw))

	var loggedIn auth.LoginUserResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &loggedIn))
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	status, raw = do(t, app, http.MethodGet, "/api/v1/auth/me", "", loggedIn.AccessToken)
	require.Equal(t, http.StatusOK, status, string(raw))

	var me auth.UserResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &me))
	assert.Equal(t, registered.User.ID, me.ID)

	status, _ = do(t, app, http.MethodGet, "/api/v1/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name string
		body string
	}{
		{"short password", `{"email":"a@b.co","password":"12345"}`},
		{"bad email", `{"email":"nope","password":"123456"}`},
		{"missing fields", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := do(t, app, http.MethodPost, "/api/v1/auth/register", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, status)
		})
	}
}
