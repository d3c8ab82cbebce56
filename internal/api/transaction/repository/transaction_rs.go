package transactionRepository

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type TransactionDB struct {
	ID          sql.NullString  `db:"id"`
	UserID      sql.NullString  `db:"user_id"`
	Description sql.NullString  `db:"description"`
	Amount      sql.NullFloat64 `db:"amount"`
	Date        sql.NullTime    `db:"date"`
	Type        sql.NullString  `db:"type"`
	Category    sql.NullString  `db:"category"`
	IsRecurring sql.NullBool    `db:"is_recurring"`
	DueDate     sql.NullTime    `db:"due_date"`
	IsPaid      sql.NullBool    `db:"is_paid"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func argsFromTransaction(t entity.Transaction) map[string]interface{} {
	args := map[string]interface{}{
		"id":           t.ID,
		"user_id":      t.UserID,
		"description":  t.Description,
		"amount":       t.Amount,
		"date":         t.Date,
		"type":         string(t.Type),
		"category":     t.Category,
		"is_recurring": false,
		"due_date":     sql.NullTime{},
		"is_paid":      false,
		"created_at":   t.CreatedAt,
		"updated_at":   t.UpdatedAt,
	}

	if t.Recurrence != nil {
		args["is_recurring"] = true
		args["due_date"] = sql.NullTime{Time: t.Recurrence.DueDate, Valid: true}
		args["is_paid"] = t.Recurrence.IsPaid
	}

	return args
}

func (r *transactionRepository) CreateTransaction(c context.Context, t entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryCreateTransaction, argsFromTransaction(t))
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateTransaction")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating transaction")
		return err
	}

	return nil
}

func (r *transactionRepository) GetTransactionByID(c context.Context, userID string, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var row TransactionDB

	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetTransactionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID named query preparation err")
		return entity.Transaction{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Transaction{}, transaction.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID execution err")
		return entity.Transaction{}, err
	}

	return makeTransaction(row), nil
}

func (r *transactionRepository) GetTransactionsByUserID(c context.Context, userID string) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []TransactionDB

	query, args, err := sqlx.Named(queryGetTransactionsByUserID, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionsByUserID named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionsByUserID execution err")
		return nil, err
	}

	result := make([]entity.Transaction, 0, len(rows))
	for _, row := range rows {
		result = append(result, makeTransaction(row))
	}

	return result, nil
}

func (r *transactionRepository) UpdateTransaction(c context.Context, t entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryUpdateTransaction, argsFromTransaction(t))
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return transaction.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) DeleteTransaction(c context.Context, userID string, id string) error {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryDeleteTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return transaction.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) CountByCategory(c context.Context, userID string, category string) (int, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"user_id":  userID,
		"category": category,
	}

	query, args, err := sqlx.Named(queryCountByCategory, argsKV)
	if err != nil {
		return 0, err
	}
	query = r.q.Rebind(query)

	var count int
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountByCategory execution err")
		return 0, err
	}

	return count, nil
}

func makeTransaction(row TransactionDB) entity.Transaction {
	t := entity.Transaction{
		ID:          row.ID.String,
		UserID:      row.UserID.String,
		Description: row.Description.String,
		Amount:      row.Amount.Float64,
		Date:        row.Date.Time,
		Type:        entity.TransactionType(row.Type.String),
		Category:    row.Category.String,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if row.IsRecurring.Bool {
		t.Recurrence = &entity.Recurrence{
			DueDate: entity.CalendarDate(row.DueDate.Time),
			IsPaid:  row.IsPaid.Bool,
		}
	}

	return t
}
