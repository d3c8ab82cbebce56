package categoryRepository

import (
	"FinanceTracker/internal/api/category"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type CustomCategoryDB struct {
	Key       sql.NullString `db:"key"`
	UserID    sql.NullString `db:"user_id"`
	Name      sql.NullString `db:"name"`
	Color     sql.NullString `db:"color"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *categoryRepository) CreateCategory(c context.Context, cat entity.CustomCategory) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"key":        cat.Key,
		"user_id":    cat.UserID,
		"name":       cat.Name,
		"color":      cat.Color,
		"created_at": cat.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateCategory")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating category")
		return err
	}

	return nil
}

func (r *categoryRepository) GetCategoriesByUserID(c context.Context, userID string) ([]entity.CustomCategory, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []CustomCategoryDB

	query, args, err := sqlx.Named(queryGetCategoriesByUserID, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoriesByUserID named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoriesByUserID execution err")
		return nil, err
	}

	result := make([]entity.CustomCategory, 0, len(rows))
	for _, row := range rows {
		result = append(result, entity.CustomCategory{
			Key:       row.Key.String,
			UserID:    row.UserID.String,
			Name:      row.Name.String,
			Color:     row.Color.String,
			CreatedAt: row.CreatedAt,
		})
	}

	return result, nil
}

func (r *categoryRepository) DeleteCategory(c context.Context, userID string, key string) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryDeleteCategory, map[string]interface{}{
		"user_id": userID,
		"key":     key,
	})
	if err != nil {
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCategory execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}
