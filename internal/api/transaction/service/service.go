package transactionService

import (
	"FinanceTracker/internal/api/transaction"
	categoryRepository "FinanceTracker/internal/api/category/repository"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/s3"
	"FinanceTracker/pkg/utils"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ITransactionService interface {
	ListTransactions(ctx context.Context, userID string) ([]entity.Transaction, error)
	GetTransaction(ctx context.Context, userID string, id string) (entity.Transaction, error)
	CreateTransaction(ctx context.Context, req transaction.SaveTransactionRequest) (entity.Transaction, error)
	ReplaceTransaction(ctx context.Context, id string, req transaction.SaveTransactionRequest) (entity.Transaction, error)
	DeleteTransaction(ctx context.Context, userID string, id string) error
	TogglePaidStatus(ctx context.Context, userID string, id string) (entity.Transaction, error)
	ExportCSV(ctx context.Context, userID string, locale entity.Locale) ([]byte, error)
	ArchiveCSV(ctx context.Context, userID string, locale entity.Locale) (transaction.ArchiveResponse, error)
}

type transactionService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
	categoryRepository    categoryRepository.Repository
	s3                    s3.ItfS3
	utils                 utils.IUtils
	location              *time.Location
	now                   func() time.Time
}

// New builds the service. s3Client may be nil, in which case archiving is unavailable.
func New(
	log *logrus.Logger,
	tr transactionRepository.Repository,
	cr categoryRepository.Repository,
	s3Client s3.ItfS3,
	u utils.IUtils,
) ITransactionService {
	return &transactionService{
		log:                   log,
		transactionRepository: tr,
		categoryRepository:    cr,
		s3:                    s3Client,
		utils:                 u,
		location:              utils.AppLocation(),
		now:                   time.Now,
	}
}
