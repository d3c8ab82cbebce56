package transactionService

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"FinanceTracker/pkg/utils"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *transactionService) ListTransactions(ctx context.Context, userID string) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	txs, err := repo.Transactions.GetTransactionsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to list transactions")
		return nil, err
	}

	return txs, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, userID string, id string) (entity.Transaction, error) {
	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		return entity.Transaction{}, err
	}

	return repo.Transactions.GetTransactionByID(ctx, userID, id)
}

func (s *transactionService) CreateTransaction(ctx context.Context, req transaction.SaveTransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	t, err := s.buildTransaction(ctx, req)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return entity.Transaction{}, err
	}

	now := s.now()
	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Transaction{}, err
	}

	t.ID = id
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Recurrence != nil {
		t.Recurrence.IsPaid = false
	}

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		return entity.Transaction{}, err
	}

	if err := repo.Transactions.CreateTransaction(ctx, t); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction")
		return entity.Transaction{}, transaction.ErrCreateTransaction
	}

	s.log.WithFields(logrus.Fields{
		"request_id":     requestID,
		"transaction_id": t.ID,
	}).Info("Transaction created")

	return t, nil
}

// ReplaceTransaction overwrites every user-editable field. The paid flag belongs to
// the toggle operation, so it survives as long as the transaction stays recurring.
func (s *transactionService) ReplaceTransaction(ctx context.Context, id string, req transaction.SaveTransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(true)
	if err != nil {
		return entity.Transaction{}, err
	}
	defer func() {
		if err != nil {
			_ = repo.Rollback()
		}
	}()

	existing, err := repo.Transactions.GetTransactionByID(ctx, req.UserID, id)
	if err != nil {
		return entity.Transaction{}, err
	}

	t, err := s.buildTransaction(ctx, req)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return entity.Transaction{}, err
	}

	t.ID = existing.ID
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = s.now()
	if t.Recurrence != nil && existing.Recurrence != nil {
		t.Recurrence.IsPaid = existing.Recurrence.IsPaid
	}

	if err = repo.Transactions.UpdateTransaction(ctx, t); err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound) {
			return entity.Transaction{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update transaction")
		return entity.Transaction{}, transaction.ErrUpdateTransaction
	}

	if err = repo.Commit(); err != nil {
		return entity.Transaction{}, err
	}

	return t, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		return err
	}

	if err := repo.Transactions.DeleteTransaction(ctx, userID, id); err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete transaction")
		return transaction.ErrDeleteTransaction
	}

	return nil
}

// TogglePaidStatus flips is_paid on a recurring bill and leaves its due date alone.
func (s *transactionService) TogglePaidStatus(ctx context.Context, userID string, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(true)
	if err != nil {
		return entity.Transaction{}, err
	}
	defer func() {
		if err != nil {
			_ = repo.Rollback()
		}
	}()

	t, err := repo.Transactions.GetTransactionByID(ctx, userID, id)
	if err != nil {
		return entity.Transaction{}, err
	}

	if t.Recurrence == nil {
		err = transaction.ErrNotRecurring
		return entity.Transaction{}, err
	}

	t.Recurrence.IsPaid = !t.Recurrence.IsPaid
	t.UpdatedAt = s.now()

	if err = repo.Transactions.UpdateTransaction(ctx, t); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to toggle paid status")
		return entity.Transaction{}, err
	}

	if err = repo.Commit(); err != nil {
		return entity.Transaction{}, err
	}

	return t, nil
}

func (s *transactionService) buildTransaction(ctx context.Context, req transaction.SaveTransactionRequest) (entity.Transaction, error) {
	date, err := utils.ParseDate(req.Date, s.location)
	if err != nil {
		return entity.Transaction{}, transaction.ErrInvalidDate
	}

	t := entity.Transaction{
		UserID:      req.UserID,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		Type:        entity.TransactionType(req.Type),
		Category:    req.Category,
	}

	if req.IsRecurring {
		t.Recurrence = &entity.Recurrence{}
		if req.DueDate != "" {
			due, err := utils.ParseDate(req.DueDate, s.location)
			if err != nil {
				return entity.Transaction{}, transaction.ErrInvalidDate
			}
			t.Recurrence.DueDate = entity.CalendarDate(due)
		}
	}

	known, err := s.categoryKeys(ctx, req.UserID)
	if err != nil {
		return entity.Transaction{}, err
	}

	if err := t.Validate(func(key string) bool { _, ok := known[key]; return ok }); err != nil {
		return entity.Transaction{}, err
	}

	return t, nil
}

func (s *transactionService) categoryKeys(ctx context.Context, userID string) (map[string]struct{}, error) {
	keys := make(map[string]struct{}, len(entity.BuiltinCategories))
	for _, c := range entity.BuiltinCategories {
		keys[c.Key] = struct{}{}
	}

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	custom, err := repo.Categories.GetCategoriesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, c := range custom {
		keys[c.Key] = struct{}{}
	}

	return keys, nil
}
