package config

import (
	"FinanceTracker/database/postgres"
	authRepository "FinanceTracker/internal/api/auth/repository"
	categoryRepository "FinanceTracker/internal/api/category/repository"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	"FinanceTracker/pkg/kvstore"
	"FinanceTracker/pkg/redis"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverRedis    = "redis"
	StorageDriverMemory   = "memory"
)

// Storage holds exactly one backend: a postgres handle or a key-value store.
type Storage struct {
	DB    *sqlx.DB
	Store kvstore.Store
}

type Repositories struct {
	Auth         authRepository.Repository
	Transactions transactionRepository.Repository
	Categories   categoryRepository.Repository
}

// OpenStorage picks the backend from STORAGE_DRIVER (postgres by default). The
// redis driver needs a connected redisServer.
func OpenStorage(log *logrus.Logger, redisServer redis.IRedis) (Storage, error) {
	driver := strings.ToLower(os.Getenv("STORAGE_DRIVER"))
	if driver == "" {
		driver = StorageDriverPostgres
	}

	var storage Storage

	switch driver {
	case StorageDriverPostgres:
		db, err := postgres.New()
		if err != nil {
			log.Errorf("Failed to connect to database: %v", err)
			return Storage{}, fmt.Errorf("failed to create database connection: %w", err)
		}
		if os.Getenv("DB_AUTO_MIGRATE") == "true" {
			if err := postgres.MigrateUp(db); err != nil {
				_ = db.Close()
				return Storage{}, fmt.Errorf("failed to run migrations: %w", err)
			}
		}
		storage.DB = db
	case StorageDriverRedis:
		if redisServer == nil {
			return Storage{}, errors.New("redis storage driver requires REDIS_ADDRESS")
		}
		storage.Store = kvstore.NewRedis(redisServer, kvstore.LatencyFromEnv())
	case StorageDriverMemory:
		storage.Store = kvstore.NewMemory(kvstore.LatencyFromEnv())
	default:
		return Storage{}, fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}

	log.WithField("driver", driver).Info("Storage ready")
	return storage, nil
}

func (s Storage) Repositories(log *logrus.Logger) Repositories {
	if s.DB != nil {
		return Repositories{
			Auth:         authRepository.New(s.DB, log),
			Transactions: transactionRepository.New(s.DB, log),
			Categories:   categoryRepository.New(s.DB, log),
		}
	}

	return Repositories{
		Auth:         authRepository.NewKV(s.Store, log),
		Transactions: transactionRepository.NewKV(s.Store, log),
		Categories:   categoryRepository.NewKV(s.Store, log),
	}
}

func (s Storage) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}
