package assistantService

import (
	"FinanceTracker/internal/api/assistant"
	"FinanceTracker/internal/entity"
	"FinanceTracker/internal/report"
	contextPkg "FinanceTracker/pkg/context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/generative-ai-go/genai"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const minDescriptionLength = 4

type categorizeResult struct {
	CategoryKey string `json:"categoryKey"`
}

func fallback() assistant.CategorizeResponse {
	return assistant.CategorizeResponse{Category: entity.FallbackCategoryKey, Fallback: true}
}

// Categorize never fails: every problem collapses into the fallback category.
func (s *assistantService) Categorize(ctx context.Context, req assistant.CategorizeRequest) assistant.CategorizeResponse {
	requestID := contextPkg.GetRequestID(ctx)

	description := normalizeDescription(req.Description)
	if utf8.RuneCountInString(description) < minDescriptionLength || s.gemini == nil {
		return fallback()
	}

	locale := entity.ParseLocale(req.Locale)

	table, err := s.categoryTable(ctx, req.UserID, locale)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to load categories for categorization")
		return fallback()
	}

	cacheKey := fmt.Sprintf("categorize:%s:%s:%s", locale, req.UserID, description)
	if cached, ok := s.cachedCategory(ctx, cacheKey); ok && table.Has(cached) {
		return assistant.CategorizeResponse{Category: cached}
	}

	raw, err := s.gemini.GenerateJSON(ctx, categorizePrompt(req.Description, table), categorizeSchema(table.Keys()))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Gemini categorization failed")
		return fallback()
	}

	var result categorizeResult
	if err := jsoniter.UnmarshalFromString(raw, &result); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Gemini returned malformed JSON")
		return fallback()
	}

	if !table.Has(result.CategoryKey) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"category":   result.CategoryKey,
		}).Warn("Gemini returned an unknown category key")
		return fallback()
	}

	s.cacheCategory(ctx, cacheKey, result.CategoryKey)

	return assistant.CategorizeResponse{Category: result.CategoryKey}
}

func (s *assistantService) categoryTable(ctx context.Context, userID string, locale entity.Locale) (*report.CategoryTable, error) {
	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	custom, err := repo.Categories.GetCategoriesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return report.NewCategoryTable(locale, custom), nil
}

func (s *assistantService) cachedCategory(ctx context.Context, key string) (string, bool) {
	if s.redis == nil {
		return "", false
	}

	value, err := s.redis.Get(ctx, key)
	if err != nil {
		return "", false
	}
	return value, true
}

func (s *assistantService) cacheCategory(ctx context.Context, key string, category string) {
	if s.redis == nil {
		return
	}

	if err := s.redis.Set(ctx, key, category, categorizeCacheTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Failed to cache category")
	}
}

func categorizePrompt(description string, table *report.CategoryTable) string {
	var sb strings.Builder
	sb.WriteString("You are a personal finance assistant. Classify the transaction description into exactly one of the categories below.\n")
	sb.WriteString(fmt.Sprintf("Description: %q\n", description))
	sb.WriteString("Categories (key: name):\n")
	for _, info := range table.All() {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", info.Key, info.Name))
	}
	sb.WriteString(fmt.Sprintf("If none fits, choose %q.", entity.FallbackCategoryKey))
	return sb.String()
}

func categorizeSchema(keys []string) *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"categoryKey": {
				Type:        genai.TypeString,
				Description: "The single best category key for the transaction.",
				Enum:        keys,
			},
		},
		Required: []string{"categoryKey"},
	}
}

func normalizeDescription(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
