package dashboardService

import (
	"FinanceTracker/internal/api/dashboard"
	categoryRepository "FinanceTracker/internal/api/category/repository"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	"FinanceTracker/internal/entity"
	"FinanceTracker/internal/report"
	"FinanceTracker/pkg/utils"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Pie geometry matches a 100x100 viewBox.
const (
	pieCenter = 50
	pieRadius = 50
)

type IDashboardService interface {
	Summary(ctx context.Context, userID string) (report.Totals, error)
	Groups(ctx context.Context, userID string, locale entity.Locale) (dashboard.GroupsResponse, error)
	Distribution(ctx context.Context, userID string, view string, locale entity.Locale) (dashboard.DistributionResponse, error)
	Bills(ctx context.Context, userID string, locale entity.Locale) (dashboard.BillsResponse, error)
	Overview(ctx context.Context, userID string, view string, locale entity.Locale) (dashboard.OverviewResponse, error)
}

type dashboardService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
	categoryRepository    categoryRepository.Repository
	location              *time.Location
	now                   func() time.Time
}

func New(
	log *logrus.Logger,
	tr transactionRepository.Repository,
	cr categoryRepository.Repository,
) IDashboardService {
	return &dashboardService{
		log:                   log,
		transactionRepository: tr,
		categoryRepository:    cr,
		location:              utils.AppLocation(),
		now:                   time.Now,
	}
}
