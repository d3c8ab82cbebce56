package categoryService

import (
	"FinanceTracker/internal/api/category"
	"FinanceTracker/internal/entity"
	"FinanceTracker/internal/report"
	contextPkg "FinanceTracker/pkg/context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// colorRule matches the tag on CreateCategoryRequest.Color.
const colorRule = "hexcolor,len=7"

var colorValidator = validator.New()

func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]entity.CustomCategory, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	categories, err := repo.Categories.GetCategoriesByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to list custom categories")
		return nil, err
	}

	return categories, nil
}

func (s *categoryService) CategoryTable(ctx context.Context, userID string, locale entity.Locale) (*report.CategoryTable, error) {
	custom, err := s.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	return report.NewCategoryTable(locale, custom), nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (entity.CustomCategory, error) {
	requestID := contextPkg.GetRequestID(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" || utf8.RuneCountInString(name) > 50 {
		return entity.CustomCategory{}, category.ErrInvalidName
	}

	color := strings.TrimSpace(req.Color)
	if color == "" {
		color = s.utils.RandomHexColor()
	}
	if err := colorValidator.Var(color, colorRule); err != nil {
		return entity.CustomCategory{}, category.ErrInvalidColor
	}

	existing, err := s.ListCategories(ctx, req.UserID)
	if err != nil {
		return entity.CustomCategory{}, err
	}

	taken := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		taken[c.Key] = struct{}{}
	}

	now := s.now()
	created := entity.CustomCategory{
		UserID: req.UserID,
		Name:   name,
		Color:  strings.ToUpper(color),
		Key: entity.NewCategoryKey(name, now, func(key string) bool {
			if entity.IsBuiltinCategory(key) {
				return true
			}
			_, ok := taken[key]
			return ok
		}),
		CreatedAt: now,
	}

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		return entity.CustomCategory{}, err
	}

	if err := repo.Categories.CreateCategory(ctx, created); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create custom category")
		return entity.CustomCategory{}, category.ErrCreateCategory
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"key":        created.Key,
	}).Info("Custom category created")

	return created, nil
}

// DeleteCategory refuses while any of the owner's transactions still reference key.
func (s *categoryService) DeleteCategory(ctx context.Context, userID string, key string) error {
	requestID := contextPkg.GetRequestID(ctx)

	existing, err := s.ListCategories(ctx, userID)
	if err != nil {
		return err
	}

	found := false
	for _, c := range existing {
		if c.Key == key {
			found = true
			break
		}
	}
	if !found {
		return category.ErrCategoryNotFound
	}

	txRepo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		return err
	}

	inUse, err := txRepo.Transactions.CountByCategory(ctx, userID, key)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to count category usage")
		return err
	}
	if inUse > 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"key":        key,
			"in_use":     inUse,
		}).Warn("Refusing to delete category in use")
		return category.ErrCategoryInUse
	}

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		return err
	}

	if err := repo.Categories.DeleteCategory(ctx, userID, key); err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete custom category")
		return category.ErrDeleteCategory
	}

	return nil
}
