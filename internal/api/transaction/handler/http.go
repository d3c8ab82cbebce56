package transactionHandler

import (
	transactionService "FinanceTracker/internal/api/transaction/service"
	"FinanceTracker/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TransactionHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	transactionService transactionService.ITransactionService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	transactionService transactionService.ITransactionService,
) *TransactionHandler {
	return &TransactionHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		transactionService: transactionService,
	}
}

func (h *TransactionHandler) Start(srv fiber.Router) {
	transactions := srv.Group("/transactions", h.middleware.NewTokenMiddleware)

	transactions.Get("/export", h.ExportCSV)
	transactions.Post("/export/archive", h.ArchiveCSV)

	transactions.Get("/", h.ListTransactions)
	transactions.Post("/", h.CreateTransaction)
	transactions.Get("/:id", h.GetTransaction)
	transactions.Put("/:id", h.ReplaceTransaction)
	transactions.Delete("/:id", h.DeleteTransaction)
	transactions.Patch("/:id/paid", h.TogglePaidStatus)
}
