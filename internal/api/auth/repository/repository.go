package authRepository

import (
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/kvstore"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

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

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var db sqlx.ExtContext
	var commitFunc, rollbackFunc func() error

	db = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		db = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Users:    &userRepository{q: db, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Users interface {
		CreateUser(ctx context.Context, user entity.User) error
		GetByID(ctx context.Context, id string) (entity.User, error)
		GetByEmail(ctx context.Context, email string) (entity.User, error)
	}

	Commit   func() error
	Rollback func() error
}

type userRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}

// NewKV keeps every account in a single "users" collection of the key-value store.
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
		Users:    &kvUserRepository{parent: r},
		Commit:   noop,
		Rollback: noop,
	}, nil
}
