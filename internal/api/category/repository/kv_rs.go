package categoryRepository

import (
	"FinanceTracker/internal/api/category"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"context"

	"github.com/sirupsen/logrus"
)

func collectionKey(userID string) string {
	return "custom_categories:" + userID
}

type kvCategoryRepository struct {
	parent *kvRepository
}

func (r *kvCategoryRepository) load(c context.Context, userID string) ([]entity.CustomCategory, error) {
	var categories []entity.CustomCategory
	if _, err := r.parent.store.Get(c, collectionKey(userID), &categories); err != nil {
		r.parent.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"error":      err.Error(),
		}).Error("Failed to load category collection")
		return nil, err
	}
	return categories, nil
}

func (r *kvCategoryRepository) CreateCategory(c context.Context, cat entity.CustomCategory) error {
	r.parent.mu.Lock()
	defer r.parent.mu.Unlock()

	categories, err := r.load(c, cat.UserID)
	if err != nil {
		return err
	}

	return r.parent.store.Set(c, collectionKey(cat.UserID), append(categories, cat))
}

func (r *kvCategoryRepository) GetCategoriesByUserID(c context.Context, userID string) ([]entity.CustomCategory, error) {
	categories, err := r.load(c, userID)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []entity.CustomCategory{}
	}
	return categories, nil
}

func (r *kvCategoryRepository) DeleteCategory(c context.Context, userID string, key string) error {
	r.parent.mu.Lock()
	defer r.parent.mu.Unlock()

	categories, err := r.load(c, userID)
	if err != nil {
		return err
	}

	for i := range categories {
		if categories[i].Key == key {
			return r.parent.store.Set(c, collectionKey(userID), append(categories[:i], categories[i+1:]...))
		}
	}

	return category.ErrCategoryNotFound
}
