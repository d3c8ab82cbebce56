package report

import (
	"FinanceTracker/internal/entity"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryTable(t *testing.T) {
	custom := []entity.CustomCategory{
		{Key: "pets_1700000000000", Name: "Pets", Color: "#112233"},
		{Key: "food", Name: "Hijacked", Color: "#000000"},
	}

	table := NewCategoryTable(entity.LocalePtBR, custom)

	food := table.Resolve("food")
	assert.Equal(t, "Alimentação", food.Name)
	assert.False(t, food.Custom)

	pets := table.Resolve("pets_1700000000000")
	assert.Equal(t, "Pets", pets.Name)
	assert.Equal(t, "#112233", pets.Color)
	assert.True(t, pets.Custom)

	unknown := table.Resolve("gone_123")
	assert.Equal(t, "gone_123", unknown.Name)
	assert.Equal(t, "#6B7280", unknown.Color)
	assert.False(t, table.Has("gone_123"))

	keys := table.Keys()
	require.Len(t, keys, len(entity.BuiltinCategories)+1)
	assert.Equal(t, "salary", keys[0])
	assert.Equal(t, "pets_1700000000000", keys[len(keys)-1])
}

func TestCategoryTable_LocaleFallback(t *testing.T) {
	table := NewCategoryTable(entity.Locale("de-DE"), nil)
	assert.Equal(t, "Housing", table.Resolve("housing").Name)

	ru := NewCategoryTable(entity.LocaleRuRU, nil)
	assert.Equal(t, "Другое", ru.Resolve(entity.FallbackCategoryKey).Name)
}
