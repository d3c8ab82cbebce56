package categoryService

import (
	"FinanceTracker/internal/api/category"
	categoryRepository "FinanceTracker/internal/api/category/repository"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/kvstore"
	"FinanceTracker/pkg/log"
	"FinanceTracker/pkg/utils"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*categoryService, transactionRepository.Repository) {
	t.Helper()

	logger := log.NewDiscardLogger()
	store := kvstore.NewMemory(0)
	tr := transactionRepository.NewKV(store, logger)

	svc := New(logger, categoryRepository.NewKV(store, logger), tr, utils.New()).(*categoryService)
	svc.now = func() time.Time { return fixedNow }

	return svc, tr
}

func TestCreateCategory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, category.CreateCategoryRequest{
		UserID: "user-1",
		Name:   "  Pet Care ",
		Color:  "#aabbcc",
	})
	require.NoError(t, err)

	assert.Equal(t, "pet_care_1715342400000", created.Key)
	assert.Equal(t, "Pet Care", created.Name)
	assert.Equal(t, "#AABBCC", created.Color)

	list, err := svc.ListCategories(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.Key, list[0].Key)

	others, err := svc.ListCategories(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestCreateCategoryBumpsCollidingKey(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateCategory(ctx, category.CreateCategoryRequest{UserID: "user-1", Name: "Gym"})
	require.NoError(t, err)
	second, err := svc.CreateCategory(ctx, category.CreateCategoryRequest{UserID: "user-1", Name: "gym"})
	require.NoError(t, err)

	assert.Equal(t, "gym_1715342400000", first.Key)
	assert.Equal(t, "gym_1715342400001", second.Key)
}

func TestCreateCategoryGeneratesColor(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateCategory(context.Background(), category.CreateCategoryRequest{UserID: "user-1", Name: "Gifts"})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^#[0-9A-F]{6}$`), created.Color)
}

func TestCreateCategoryRejects(t *testing.T) {
	tests := []struct {
		name string
		req  category.CreateCategoryRequest
		want error
	}{
		{"blank name", category.CreateCategoryRequest{UserID: "u", Name: "   "}, category.ErrInvalidName},
		{"long name", category.CreateCategoryRequest{UserID: "u", Name: "abcdefghijabcdefghijabcdefghijabcdefghijabcdefghijk"}, category.ErrInvalidName},
		{"bad color", category.CreateCategoryRequest{UserID: "u", Name: "Ok", Color: "red"}, category.ErrInvalidColor},
		{"short hex color", category.CreateCategoryRequest{UserID: "u", Name: "Ok", Color: "#ABC"}, category.ErrInvalidColor},
		{"alpha hex color", category.CreateCategoryRequest{UserID: "u", Name: "Ok", Color: "#AABBCCDD"}, category.ErrInvalidColor},
		{"missing hash", category.CreateCategoryRequest{UserID: "u", Name: "Ok", Color: "AABBCC"}, category.ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			_, err := svc.CreateCategory(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDeleteCategory(t *testing.T) {
	svc, tr := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, category.CreateCategoryRequest{UserID: "user-1", Name: "Pets"})
	require.NoError(t, err)

	client, err := tr.NewClient(false)
	require.NoError(t, err)
	require.NoError(t, client.Transactions.CreateTransaction(ctx, entity.Transaction{
		ID:          "tx-1",
		UserID:      "user-1",
		Description: "Vet",
		Amount:      80,
		Date:        fixedNow,
		Type:        entity.TransactionTypeExpense,
		Category:    created.Key,
	}))

	assert.ErrorIs(t, svc.DeleteCategory(ctx, "user-1", created.Key), category.ErrCategoryInUse)

	require.NoError(t, client.Transactions.DeleteTransaction(ctx, "user-1", "tx-1"))
	require.NoError(t, svc.DeleteCategory(ctx, "user-1", created.Key))

	list, err := svc.ListCategories(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, svc.DeleteCategory(ctx, "user-1", created.Key), category.ErrCategoryNotFound)
	assert.ErrorIs(t, svc.DeleteCategory(ctx, "user-1", "food"), category.ErrCategoryNotFound)
}

func TestCategoryTableMergesCustom(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, category.CreateCategoryRequest{UserID: "user-1", Name: "Pets", Color: "#123456"})
	require.NoError(t, err)

	table, err := svc.CategoryTable(ctx, "user-1", entity.LocaleEnUS)
	require.NoError(t, err)

	assert.Equal(t, "Food", table.Resolve("food").Name)
	info := table.Resolve(created.Key)
	assert.Equal(t, "Pets", info.Name)
	assert.True(t, info.Custom)
	assert.Len(t, table.Keys(), len(entity.BuiltinCategories)+1)
}
