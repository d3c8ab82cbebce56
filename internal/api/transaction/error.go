package transaction

import "FinanceTracker/pkg/response"

var (
	ErrTransactionNotFound    = response.NewError(404, "transaction not found")
	ErrInvalidTransactionType = response.NewError(400, "invalid transaction type")
	ErrInvalidDescription     = response.NewError(400, "description is required")
	ErrInvalidAmount          = response.NewError(400, "amount must be greater than zero with at most two decimal places")
	ErrInvalidCategory        = response.NewError(400, "invalid category")
	ErrInvalidDate            = response.NewError(400, "invalid date, expected RFC3339 or YYYY-MM-DD")
	ErrRecurringIncome        = response.NewError(400, "only expenses can be recurring")
	ErrMissingDueDate         = response.NewError(400, "recurring transactions require a due date")
	ErrNotRecurring           = response.NewError(400, "transaction is not a recurring bill")
	ErrCreateTransaction      = response.NewError(500, "failed to create transaction")
	ErrUpdateTransaction      = response.NewError(500, "failed to update transaction")
	ErrDeleteTransaction      = response.NewError(500, "failed to delete transaction")
	ErrExportTransactions     = response.NewError(500, "failed to export transactions")
	ErrArchiveUnavailable     = response.NewError(503, "report storage is not configured")
)
