package main

import (
	"errors"
	"fmt"

	"FinanceTracker/internal/config"
	"FinanceTracker/pkg/redis"
)

// openRepositories connects to the backend chosen by STORAGE_DRIVER. The
// returned closer releases every connection it opened.
func openRepositories() (config.Repositories, func() error, error) {
	var redisServer redis.IRedis
	if r, err := redis.New(); err == nil {
		redisServer = r
	} else {
		logger.WithError(err).Debug("Running without redis")
	}

	storage, err := config.OpenStorage(logger, redisServer)
	if err != nil {
		if redisServer != nil {
			_ = redisServer.Close()
		}
		return config.Repositories{}, nil, fmt.Errorf("failed to open storage: %w", err)
	}

	closer := func() error {
		var errs []error
		errs = append(errs, storage.Close())
		if redisServer != nil {
			errs = append(errs, redisServer.Close())
		}
		return errors.Join(errs...)
	}

	return storage.Repositories(logger), closer, nil
}
