package authService

import (
	"FinanceTracker/internal/api/auth"
	authRepository "FinanceTracker/internal/api/auth/repository"
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/bcrypt"
	"FinanceTracker/pkg/utils"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type AuthService interface {
	User() UserDomain
	Auth() AuthDomain
}

type UserDomain interface {
	RegisterUser(c context.Context, req auth.RegisterUserRequest) (entity.User, error)
	GetByID(c context.Context, id string) (entity.User, error)
}

type AuthDomain interface {
	Register(c context.Context, req auth.RegisterUserRequest) (auth.LoginUserResponse, error)
	Login(c context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
}

type authService struct {
	userDomain UserDomain
	authDomain AuthDomain
}

func (a *authService) User() UserDomain {
	return a.userDomain
}

func (a *authService) Auth() AuthDomain {
	return a.authDomain
}

type userDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
	now         func() time.Time
}

type authDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
	users       UserDomain
}

func New(
	log *logrus.Logger,
	repo authRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	u utils.IUtils,
) AuthService {
	users := &userDomainImpl{
		log:         log,
		repo:        repo,
		bcryptUtils: bcryptUtils,
		utils:       u,
		now:         time.Now,
	}

	return &authService{
		userDomain: users,
		authDomain: &authDomainImpl{
			log:         log,
			repo:        repo,
			bcryptUtils: bcryptUtils,
			users:       users,
		},
	}
}
