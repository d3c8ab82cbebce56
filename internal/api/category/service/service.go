package categoryService

import (
	"FinanceTracker/internal/api/category"
	categoryRepository "FinanceTracker/internal/api/category/repository"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	"FinanceTracker/internal/entity"
	"FinanceTracker/internal/report"
	"FinanceTracker/pkg/utils"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ICategoryService interface {
	ListCategories(ctx context.Context, userID string) ([]entity.CustomCategory, error)
	CategoryTable(ctx context.Context, userID string, locale entity.Locale) (*report.CategoryTable, error)
	CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (entity.CustomCategory, error)
	DeleteCategory(ctx context.Context, userID string, key string) error
}

type categoryService struct {
	log                   *logrus.Logger
	categoryRepository    categoryRepository.Repository
	transactionRepository transactionRepository.Repository
	utils                 utils.IUtils
	now                   func() time.Time
}

func New(
	log *logrus.Logger,
	cr categoryRepository.Repository,
	tr transactionRepository.Repository,
	u utils.IUtils,
) ICategoryService {
	return &categoryService{
		log:                   log,
		categoryRepository:    cr,
		transactionRepository: tr,
		utils:                 u,
		now:                   time.Now,
	}
}
