package transactionRepository

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"context"

	"github.com/sirupsen/logrus"
)

func collectionKey(userID string) string {
	return "transactions:" + userID
}

type kvTransactionRepository struct {
	parent *kvRepository
}

func (r *kvTransactionRepository) load(c context.Context, userID string) ([]entity.Transaction, error) {
	var txs []entity.Transaction
	if _, err := r.parent.store.Get(c, collectionKey(userID), &txs); err != nil {
		r.parent.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"error":      err.Error(),
		}).Error("Failed to load transaction collection")
		return nil, err
	}
	return txs, nil
}

func (r *kvTransactionRepository) save(c context.Context, userID string, txs []entity.Transaction) error {
	if err := r.parent.store.Set(c, collectionKey(userID), txs); err != nil {
		r.parent.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"error":      err.Error(),
		}).Error("Failed to save transaction collection")
		return err
	}
	return nil
}

func (r *kvTransactionRepository) CreateTransaction(c context.Context, t entity.Transaction) error {
	r.parent.mu.Lock()
	defer r.parent.mu.Unlock()

	txs, err := r.load(c, t.UserID)
	if err != nil {
		return err
	}

	return r.save(c, t.UserID, append(txs, t))
}

func (r *kvTransactionRepository) GetTransactionByID(c context.Context, userID string, id string) (entity.Transaction, error) {
	txs, err := r.load(c, userID)
	if err != nil {
		return entity.Transaction{}, err
	}

	for _, t := range txs {
		if t.ID == id {
			return t, nil
		}
	}

	return entity.Transaction{}, transaction.ErrTransactionNotFound
}

func (r *kvTransactionRepository) GetTransactionsByUserID(c context.Context, userID string) ([]entity.Transaction, error) {
	txs, err := r.load(c, userID)
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []entity.Transaction{}
	}
	return txs, nil
}

func (r *kvTransactionRepository) UpdateTransaction(c context.Context, t entity.Transaction) error {
	r.parent.mu.Lock()
	defer r.parent.mu.Unlock()

	txs, err := r.load(c, t.UserID)
	if err != nil {
		return err
	}

	for i := range txs {
		if txs[i].ID == t.ID {
			txs[i] = t
			return r.save(c, t.UserID, txs)
		}
	}

	return transaction.ErrTransactionNotFound
}

func (r *kvTransactionRepository) DeleteTransaction(c context.Context, userID string, id string) error {
	r.parent.mu.Lock()
	defer r.parent.mu.Unlock()

	txs, err := r.load(c, userID)
	if err != nil {
		return err
	}

	for i := range txs {
		if txs[i].ID == id {
			return r.save(c, userID, append(txs[:i], txs[i+1:]...))
		}
	}

	return transaction.ErrTransactionNotFound
}

func (r *kvTransactionRepository) CountByCategory(c context.Context, userID string, category string) (int, error) {
	txs, err := r.load(c, userID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, t := range txs {
		if t.Category == category {
			count++
		}
	}

	return count, nil
}
