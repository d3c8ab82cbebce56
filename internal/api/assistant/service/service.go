package assistantService

import (
	"FinanceTracker/internal/api/assistant"
	categoryRepository "FinanceTracker/internal/api/category/repository"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	"FinanceTracker/pkg/gemini"
	"FinanceTracker/pkg/redis"
	"FinanceTracker/pkg/utils"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const categorizeCacheTTL = 24 * time.Hour

type IAssistantService interface {
	Categorize(ctx context.Context, req assistant.CategorizeRequest) assistant.CategorizeResponse
	SendMessage(ctx context.Context, req assistant.ChatRequest) assistant.ChatResponse
}

type assistantService struct {
	log                   *logrus.Logger
	gemini                gemini.IGemini
	redis                 redis.IRedis
	transactionRepository transactionRepository.Repository
	categoryRepository    categoryRepository.Repository
	location              *time.Location
	now                   func() time.Time
}

// New builds the service. geminiClient and redisClient may both be nil: without
// Gemini every call answers with a fallback, without redis nothing is cached.
func New(
	log *logrus.Logger,
	geminiClient gemini.IGemini,
	redisClient redis.IRedis,
	tr transactionRepository.Repository,
	cr categoryRepository.Repository,
) IAssistantService {
	return &assistantService{
		log:                   log,
		gemini:                geminiClient,
		redis:                 redisClient,
		transactionRepository: tr,
		categoryRepository:    cr,
		location:              utils.AppLocation(),
		now:                   time.Now,
	}
}
