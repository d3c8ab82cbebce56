package transaction

// SaveTransactionRequest is the body of both create and replace. Dates accept
// RFC3339 timestamps or plain YYYY-MM-DD.
type SaveTransactionRequest struct {
	UserID      string  `json:"-"`
	Description string  `json:"description" validate:"required,max=255"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Date        string  `json:"date" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Category    string  `json:"category" validate:"required"`
	IsRecurring bool    `json:"is_recurring"`
	DueDate     string  `json:"due_date" validate:"required_if=IsRecurring true"`
}

type TransactionResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	IsRecurring bool    `json:"is_recurring"`
	DueDate     string  `json:"due_date,omitempty"`
	IsPaid      bool    `json:"is_paid"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

type ExportQuery struct {
	Locale string `query:"locale" validate:"omitempty,max=10"`
}

type ArchiveResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
