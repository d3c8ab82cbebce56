package entity

import (
	"FinanceTracker/pkg/utils"
	"strconv"
	"time"
)

const (
	FallbackCategoryKey  = "other"
	UnknownCategoryColor = "#6B7280"
)

type CustomCategory struct {
	Key       string    `json:"key"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

type BuiltinCategory struct {
	Key   string
	Color string
	Names map[Locale]string
}

// Name returns the display name for locale, falling back to en-US.
func (c BuiltinCategory) Name(locale Locale) string {
	if name, ok := c.Names[locale]; ok {
		return name
	}
	return c.Names[FallbackLocale]
}

var BuiltinCategories = []BuiltinCategory{
	{Key: "salary", Color: "#10B981", Names: map[Locale]string{LocalePtBR: "Salário", LocaleEnUS: "Salary", LocaleZhCN: "薪水", LocaleRuRU: "Зарплата"}},
	{Key: "food", Color: "#F59E0B", Names: map[Locale]string{LocalePtBR: "Alimentação", LocaleEnUS: "Food", LocaleZhCN: "餐饮", LocaleRuRU: "Еда"}},
	{Key: "transport", Color: "#3B82F6", Names: map[Locale]string{LocalePtBR: "Transporte", LocaleEnUS: "Transport", LocaleZhCN: "交通", LocaleRuRU: "Транспорт"}},
	{Key: "housing", Color: "#8B5CF6", Names: map[Locale]string{LocalePtBR: "Moradia", LocaleEnUS: "Housing", LocaleZhCN: "住房", LocaleRuRU: "Жилье"}},
	{Key: "leisure", Color: "#EC4899", Names: map[Locale]string{LocalePtBR: "Lazer", LocaleEnUS: "Leisure", LocaleZhCN: "休闲", LocaleRuRU: "Досуг"}},
	{Key: "health", Color: "#EF4444", Names: map[Locale]string{LocalePtBR: "Saúde", LocaleEnUS: "Health", LocaleZhCN: "健康", LocaleRuRU: "Здоровье"}},
	{Key: "education", Color: "#06B6D4", Names: map[Locale]string{LocalePtBR: "Educação", LocaleEnUS: "Education", LocaleZhCN: "教育", LocaleRuRU: "Образование"}},
	{Key: "investments", Color: "#14B8A6", Names: map[Locale]string{LocalePtBR: "Investimentos", LocaleEnUS: "Investments", LocaleZhCN: "投资", LocaleRuRU: "Инвестиции"}},
	{Key: "other", Color: "#94A3B8", Names: map[Locale]string{LocalePtBR: "Outros", LocaleEnUS: "Other", LocaleZhCN: "其他", LocaleRuRU: "Другое"}},
}

func IsBuiltinCategory(key string) bool {
	for _, c := range BuiltinCategories {
		if c.Key == key {
			return true
		}
	}
	return false
}

// NewCategoryKey derives a key from name and the creation time in milliseconds.
// When the key is already taken the numeric suffix is bumped until it is free.
func NewCategoryKey(name string, now time.Time, taken func(key string) bool) string {
	slug := utils.Slugify(name)
	if slug == "" {
		slug = "custom"
	}
	suffix := now.UnixMilli()

	for {
		key := slug + "_" + strconv.FormatInt(suffix, 10)
		if taken == nil || !taken(key) {
			return key
		}
		suffix++
	}
}
