package report

import "FinanceTracker/internal/entity"

type CategoryInfo struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Custom bool   `json:"custom"`
}

// CategoryTable merges the built-in categories, localized, with a user's custom ones.
type CategoryTable struct {
	locale  entity.Locale
	entries map[string]CategoryInfo
	keys    []string
}

func NewCategoryTable(locale entity.Locale, custom []entity.CustomCategory) *CategoryTable {
	t := &CategoryTable{
		locale:  locale,
		entries: make(map[string]CategoryInfo, len(entity.BuiltinCategories)+len(custom)),
		keys:    make([]string, 0, len(entity.BuiltinCategories)+len(custom)),
	}

	for _, c := range entity.BuiltinCategories {
		t.add(CategoryInfo{Key: c.Key, Name: c.Name(locale), Color: c.Color})
	}

	for _, c := range custom {
		if _, exists := t.entries[c.Key]; exists {
			continue
		}
		t.add(CategoryInfo{Key: c.Key, Name: c.Name, Color: c.Color, Custom: true})
	}

	return t
}

func (t *CategoryTable) add(info CategoryInfo) {
	t.entries[info.Key] = info
	t.keys = append(t.keys, info.Key)
}

func (t *CategoryTable) Locale() entity.Locale {
	return t.locale
}

// Resolve never fails: unknown keys render as themselves in neutral grey.
func (t *CategoryTable) Resolve(key string) CategoryInfo {
	if info, ok := t.entries[key]; ok {
		return info
	}
	return CategoryInfo{Key: key, Name: key, Color: entity.UnknownCategoryColor}
}

func (t *CategoryTable) Has(key string) bool {
	_, ok := t.entries[key]
	return ok
}

// Keys lists built-in keys first, then custom keys in the order given.
func (t *CategoryTable) Keys() []string {
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

func (t *CategoryTable) All() []CategoryInfo {
	all := make([]CategoryInfo, 0, len(t.keys))
	for _, k := range t.keys {
		all = append(all, t.entries[k])
	}
	return all
}
