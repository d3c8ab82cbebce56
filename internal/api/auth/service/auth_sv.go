package authService

import (
	"FinanceTracker/internal/api/auth"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	jwtPkg "FinanceTracker/pkg/jwt"
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *authDomainImpl) Register(c context.Context, req auth.RegisterUserRequest) (auth.LoginUserResponse, error) {
	user, err := s.users.RegisterUser(c, req)
	if err != nil {
		return auth.LoginUserResponse{}, err
	}

	return s.issueToken(c, user)
}

func (s *authDomainImpl) Login(c context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginUserResponse{}, err
	}

	user, err := repo.Users.GetByEmail(c, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to get user by email")
			return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.LoginUserResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Password comparison failed")
		return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
	}

	return s.issueToken(c, user)
}

func (s *authDomainImpl) issueToken(c context.Context, user entity.User) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	token, expired, err := jwtPkg.SignUser(entity.UserLoginData{ID: user.ID, Email: user.Email})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.LoginUserResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Token created")

	return auth.LoginUserResponse{
		AccessToken: token,
		ExpiresAt:   expired,
		User:        ToUserResponse(user),
	}, nil
}

func ToUserResponse(user entity.User) auth.UserResponse {
	res := auth.UserResponse{ID: user.ID, Email: user.Email}
	if !user.CreatedAt.IsZero() {
		res.CreatedAt = user.CreatedAt.Format(time.RFC3339)
	}
	return res
}
