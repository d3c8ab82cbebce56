package assistantService

import (
	"FinanceTracker/internal/api/assistant"
	categoryRepository "FinanceTracker/internal/api/category/repository"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/gemini"
	"FinanceTracker/pkg/kvstore"
	"FinanceTracker/pkg/log"
	"FinanceTracker/pkg/redis"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGemini struct {
	jsonReply string
	chatReply string
	err       error

	prompts     []string
	schemas     []*genai.Schema
	instruction string
	history     []gemini.Message
}

func (f *fakeGemini) GenerateJSON(_ context.Context, prompt string, schema *genai.Schema) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.schemas = append(f.schemas, schema)
	return f.jsonReply, f.err
}

func (f *fakeGemini) Chat(_ context.Context, instruction string, history []gemini.Message, _ string) (string, error) {
	f.instruction = instruction
	f.history = history
	return f.chatReply, f.err
}

func (f *fakeGemini) Close() error { return nil }

type fakeRedis struct {
	values map[string]string
}

func (f *fakeRedis) Get(_ context.Context, key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", redis.ErrKeyNotFound
	}
	return v, nil
}

func (f *fakeRedis) Set(_ context.Context, key string, value string, _ time.Duration) error {
	f.values[key] = value
	return nil
}

func (f *fakeRedis) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeRedis) Close() error { return nil }

type fixture struct {
	svc   *assistantService
	txs   transactionRepository.Repository
	cats  categoryRepository.Repository
	cache *fakeRedis
}

func newFixture(t *testing.T, g gemini.IGemini) fixture {
	t.Helper()

	logger := log.NewDiscardLogger()
	store := kvstore.NewMemory(0)
	tr := transactionRepository.NewKV(store, logger)
	cr := categoryRepository.NewKV(store, logger)
	cache := &fakeRedis{values: map[string]string{}}

	var svc IAssistantService
	if g == nil {
		svc = New(logger, nil, cache, tr, cr)
	} else {
		svc = New(logger, g, cache, tr, cr)
	}

	impl := svc.(*assistantService)
	impl.location = time.UTC
	impl.now = func() time.Time { return time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC) }

	return fixture{svc: impl, txs: tr, cats: cr, cache: cache}
}

func TestCategorize(t *testing.T) {
	g := &fakeGemini{jsonReply: `{"categoryKey":"food"}`}
	f := newFixture(t, g)

	res := f.svc.Categorize(context.Background(), assistant.CategorizeRequest{UserID: "user-1", Description: "Supermarket  Weekly", Locale: "en-US"})
	assert.Equal(t, assistant.CategorizeResponse{Category: "food"}, res)

	require.Len(t, g.schemas, 1)
	enum := g.schemas[0].Properties["categoryKey"].Enum
	assert.Len(t, enum, len(entity.BuiltinCategories))
	assert.Contains(t, g.prompts[0], "food: Food")

	assert.Equal(t, "food", f.cache.values["categorize:en-US:user-1:supermarket weekly"])

	// served from cache
	again := f.svc.Categorize(context.Background(), assistant.CategorizeRequest{UserID: "user-1", Description: "supermarket weekly", Locale: "en-US"})
	assert.Equal(t, "food", again.Category)
	assert.Len(t, g.prompts, 1)
}

func TestCategorizeIncludesCustomKeys(t *testing.T) {
	g := &fakeGemini{jsonReply: `{"categoryKey":"pets_1"}`}
	f := newFixture(t, g)

	client, err := f.cats.NewClient(false)
	require.NoError(t, err)
	require.NoError(t, client.Categories.CreateCategory(context.Background(), entity.CustomCategory{Key: "pets_1", UserID: "user-1", Name: "Pets", Color: "#123456"}))

	res := f.svc.Categorize(context.Background(), assistant.CategorizeRequest{UserID: "user-1", Description: "vet visit"})
	assert.Equal(t, "pets_1", res.Category)
	assert.False(t, res.Fallback)
	assert.Contains(t, g.schemas[0].Properties["categoryKey"].Enum, "pets_1")
}

func TestCategorizeFallbacks(t *testing.T) {
	tests := []struct {
		name        string
		gemini      *fakeGemini
		description string
	}{
		{"unconfigured", nil, "groceries"},
		{"too short", &fakeGemini{jsonReply: `{"categoryKey":"food"}`}, " ab "},
		{"api error", &fakeGemini{err: errors.New("boom")}, "groceries"},
		{"malformed json", &fakeGemini{jsonReply: `not json`}, "groceries"},
		{"unknown key", &fakeGemini{jsonReply: `{"categoryKey":"crypto"}`}, "groceries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f fixture
			if tt.gemini == nil {
				f = newFixture(t, nil)
			} else {
				f = newFixture(t, tt.gemini)
			}

			res := f.svc.Categorize(context.Background(), assistant.CategorizeRequest{UserID: "user-1", Description: tt.description})
			assert.Equal(t, assistant.CategorizeResponse{Category: "other", Fallback: true}, res)
			assert.Empty(t, f.cache.values)
		})
	}
}

func TestSendMessage(t *testing.T) {
	g := &fakeGemini{chatReply: "You spent 300 on food."}
	f := newFixture(t, g)

	client, err := f.txs.NewClient(false)
	require.NoError(t, err)
	require.NoError(t, client.Transactions.CreateTransaction(context.Background(), entity.Transaction{
		ID: "t1", UserID: "user-1", Description: "Groceries", Amount: 300,
		Date: time.Date(2024, time.May, 8, 0, 0, 0, 0, time.UTC), Type: entity.TransactionTypeExpense, Category: "food",
	}))

	res := f.svc.SendMessage(context.Background(), assistant.ChatRequest{
		UserID:  "user-1",
		Message: "How much on food?",
		History: []gemini.Message{
			{Role: gemini.RoleModel, Text: "Hi! I'm Jorginho."},
			{Role: gemini.RoleUser, Text: "hello"},
			{Role: gemini.RoleModel, Text: "hi"},
		},
	})

	assert.Equal(t, assistant.ChatResponse{Reply: "You spent 300 on food."}, res)
	assert.Contains(t, g.instruction, "Jorginho")
	assert.Contains(t, g.instruction, "2024-05-10")
	assert.Contains(t, g.instruction, `Groceries`)
	require.Len(t, g.history, 2)
	assert.Equal(t, gemini.RoleUser, g.history[0].Role)
}

func TestSendMessageSentinels(t *testing.T) {
	unconfigured := newFixture(t, nil)
	res := unconfigured.svc.SendMessage(context.Background(), assistant.ChatRequest{UserID: "user-1", Message: "hi"})
	assert.Equal(t, assistant.ChatResponse{Reply: assistant.AssistantUnavailableReply, Unavailable: true}, res)

	failing := newFixture(t, &fakeGemini{err: errors.New("quota")})
	res = failing.svc.SendMessage(context.Background(), assistant.ChatRequest{UserID: "user-1", Message: "hi"})
	assert.Equal(t, assistant.ChatResponse{Reply: assistant.ChatErrorReply}, res)

	g := &fakeGemini{chatReply: "ok"}
	empty := newFixture(t, g)
	empty.svc.SendMessage(context.Background(), assistant.ChatRequest{UserID: "user-1", Message: "hi"})
	assert.Contains(t, g.instruction, "No transactions yet.")
}
