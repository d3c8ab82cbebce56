package authService

import (
	"FinanceTracker/internal/api/auth"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

func (s *userDomainImpl) RegisterUser(c context.Context, req auth.RegisterUserRequest) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return entity.User{}, err
	}

	now := s.now()
	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.User{}, err
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.User{}, err
	}

	user := entity.User{
		ID:        id,
		Email:     normalizeEmail(req.Email),
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Users.CreateUser(c, user); err != nil {
		if errors.Is(err, auth.ErrEmailAlreadyExists) {
			return entity.User{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return entity.User{}, auth.ErrRegisterUser
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("User registered")

	return user, nil
}

func (s *userDomainImpl) GetByID(c context.Context, id string) (entity.User, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return entity.User{}, err
	}

	user, err := repo.Users.GetByID(c, id)
	if err != nil {
		if !errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(c),
				"error":      err.Error(),
			}).Error("Failed to get user by id")
		}
		return entity.User{}, err
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
