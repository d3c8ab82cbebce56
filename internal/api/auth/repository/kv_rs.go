package authRepository

import (
	"FinanceTracker/internal/api/auth"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

const usersKey = "users"

// stored users keep their hash, which entity.User hides from JSON.
type kvUser struct {
	entity.User
	PasswordHash string `json:"password_hash"`
}

type kvUserRepository struct {
	parent *kvRepository
}

func (r *kvUserRepository) load(c context.Context) ([]kvUser, error) {
	var users []kvUser
	if _, err := r.parent.store.Get(c, usersKey, &users); err != nil {
		r.parent.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"error":      err.Error(),
		}).Error("Failed to load user collection")
		return nil, err
	}
	return users, nil
}

func (r *kvUserRepository) CreateUser(c context.Context, user entity.User) error {
	r.parent.mu.Lock()
	defer r.parent.mu.Unlock()

	users, err := r.load(c)
	if err != nil {
		return err
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, user.Email) {
			return auth.ErrEmailAlreadyExists
		}
	}

	return r.parent.store.Set(c, usersKey, append(users, kvUser{User: user, PasswordHash: user.Password}))
}

func (r *kvUserRepository) GetByID(c context.Context, id string) (entity.User, error) {
	return r.find(c, func(u kvUser) bool { return u.ID == id })
}

func (r *kvUserRepository) GetByEmail(c context.Context, email string) (entity.User, error) {
	return r.find(c, func(u kvUser) bool { return strings.EqualFold(u.Email, email) })
}

func (r *kvUserRepository) find(c context.Context, match func(kvUser) bool) (entity.User, error) {
	users, err := r.load(c)
	if err != nil {
		return entity.User{}, err
	}

	for _, u := range users {
		if match(u) {
			user := u.User
			user.Password = u.PasswordHash
			return user, nil
		}
	}

	return entity.User{}, auth.ErrUserNotFound
}
