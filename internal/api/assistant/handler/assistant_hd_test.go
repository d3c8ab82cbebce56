package assistantHandler

import (
	"FinanceTracker/internal/api/assistant"
	assistantService "FinanceTracker/internal/api/assistant/service"
	categoryRepository "FinanceTracker/internal/api/category/repository"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	"FinanceTracker/internal/entity"
	"FinanceTracker/internal/middleware"
	jwtPkg "FinanceTracker/pkg/jwt"
	"FinanceTracker/pkg/kvstore"
	"FinanceTracker/pkg/log"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	t.Setenv(jwtPkg.SecretEnvKey, "test-secret")

	logger := log.NewDiscardLogger()
	store := kvstore.NewMemory(0)
	svc := assistantService.New(logger, nil, nil,
		transactionRepository.NewKV(store, logger),
		categoryRepository.NewKV(store, logger),
	)
	m := middleware.NewWithRate(logger, rate.Inf, 1)

	app := fiber.New()
	app.Use(m.NewRequestIDMiddleware())
	New(logger, validator.New(), m, svc).Start(app)

	token, _, err := jwtPkg.SignUser(entity.UserLoginData{ID: "user-1", Email: "a@b.co"})
	require.NoError(t, err)

	return app, token
}

func post(t *testing.T, app *fiber.App, path, token, body string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
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

func TestCategorizeWithoutGemini(t *testing.T) {
	app, token := newTestApp(t)

	status, raw := post(t, app, "/assistant/categorize", token, `{"description":"groceries","locale":"en-US"}`)
	require.Equal(t, http.StatusOK, status, string(raw))

	var res assistant.CategorizeResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &res))
	assert.Equal(t, assistant.CategorizeResponse{Category: "other", Fallback: true}, res)
}

func TestChatWithoutGemini(t *testing.T) {
	app, token := newTestApp(t)

	status, raw := post(t, app, "/assistant/chat", token, `{"message":"hi","history":[{"role":"model","text":"hello"}]}`)
	require.Equal(t, http.StatusOK, status, string(raw))

	var res assistant.ChatResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &res))
	assert.True(t, res.Unavailable)
	assert.Equal(t, assistant.AssistantUnavailableReply, res.Reply)
}

func TestAssistantRequestValidation(t *testing.T) {
	app, token := newTestApp(t)

	status, _ := post(t, app, "/assistant/chat", token, `{"message":"hi","history":[{"role":"system","text":"x"}]}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = post(t, app, "/assistant/categorize", token, `{"description":""}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = post(t, app, "/assistant/categorize", "", `{"description":"groceries"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestWebSocketRequiresUpgrade(t *testing.T) {
	app, token := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/assistant/ws?token="+token, nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, res.StatusCode)
}

type countingAssistant struct {
	chats int
}

func (c *countingAssistant) Categorize(context.Context, assistant.CategorizeRequest) assistant.CategorizeResponse {
	return assistant.CategorizeResponse{Category: "other", Fallback: true}
}

func (c *countingAssistant) SendMessage(_ context.Context, req assistant.ChatRequest) assistant.ChatResponse {
	c.chats++
	return assistant.ChatResponse{Reply: "echo: " + req.Message}
}

func TestAnswerFrameRateLimit(t *testing.T) {
	svc := &countingAssistant{}
	h := New(log.NewDiscardLogger(), validator.New(), middleware.NewWithRate(log.NewDiscardLogger(), rate.Inf, 1), svc)

	limiter := rate.NewLimiter(rate.Every(time.Hour), 2)
	user := entity.UserLoginData{ID: "user-1"}
	frame := []byte(`{"message":"how much did I spend?"}`)

	assert.Equal(t, assistant.ChatResponse{Reply: "echo: how much did I spend?"}, h.answerFrame("req-1", user, limiter, frame))
	assert.Equal(t, assistant.ChatResponse{Reply: "echo: how much did I spend?"}, h.answerFrame("req-1", user, limiter, frame))

	refused := h.answerFrame("req-1", user, limiter, frame)
	assert.Equal(t, socketError{Error: middleware.ErrTooManyRequests.Error()}, refused)
	assert.Equal(t, 2, svc.chats)
}

func TestAnswerFrameRejectsBadFrames(t *testing.T) {
	svc := &countingAssistant{}
	h := New(log.NewDiscardLogger(), validator.New(), middleware.NewWithRate(log.NewDiscardLogger(), rate.Inf, 1), svc)
	limiter := rate.NewLimiter(rate.Inf, 1)
	user := entity.UserLoginData{ID: "user-1"}

	assert.Equal(t, socketError{Error: "invalid message"}, h.answerFrame("req-1", user, limiter, []byte("not json")))
	assert.IsType(t, socketError{}, h.answerFrame("req-1", user, limiter, []byte(`{"message":""}`)))
	assert.Zero(t, svc.chats)
}
