package categoryRepository

import (
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/kvstore"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

type Client struct {
	Categories interface {
		CreateCategory(c context.Context, category entity.CustomCategory) error
		GetCategoriesByUserID(c context.Context, userID string) ([]entity.CustomCategory, error)
		DeleteCategory(c context.Context, userID string, key string) error
	}

	Commit   func() error
	Rollback func() error
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Categories: &categoryRepository{q: sqlExecutor, log: r.log},
		Commit:     commitFunc,
		Rollback:   rollbackFunc,
	}, nil
}

type categoryRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

func NewKV(store kvstore.Store, log *logrus.Logger) Repository {
	return &kvRepository{
		store: store,
		log:   log,
	}
}

type kvRepository struct {
	store kvstore.Store
	log   *logrus.Logger
	mu    sync.Mutex
}

func (r *kvRepository) NewClient(_ bool) (Client, error) {
	noop := func() error { return nil }

	return Client{
		Categories: &kvCategoryRepository{parent: r},
		Commit:     noop,
		Rollback:   noop,
	}, nil
}
