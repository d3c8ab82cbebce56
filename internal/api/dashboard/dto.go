package dashboard

import "FinanceTracker/internal/report"

type Query struct {
	View   string `query:"view" validate:"omitempty,oneof=week month"`
	Locale string `query:"locale" validate:"omitempty,max=10"`
}

type TransactionView struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
}

type GroupResponse struct {
	Category     string            `json:"category"`
	Name         string            `json:"name"`
	Color        string            `json:"color"`
	Total        float64           `json:"total"`
	Transactions []TransactionView `json:"transactions"`
}

type GroupsResponse struct {
	Income  []GroupResponse `json:"income"`
	Expense []GroupResponse `json:"expense"`
}

type ShareResponse struct {
	Category   string  `json:"category"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}

type ArcResponse struct {
	report.Arc
	Name  string `json:"name"`
	Color string `json:"color"`
}

type DistributionResponse struct {
	View   string          `json:"view"`
	Window report.Window   `json:"window"`
	Total  float64         `json:"total"`
	Empty  bool            `json:"empty"`
	Shares []ShareResponse `json:"shares"`
	Arcs   []ArcResponse   `json:"arcs"`
}

type BillResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	DueDate     string  `json:"due_date"`
	IsPaid      bool    `json:"is_paid"`
	DiffDays    int     `json:"diff_days"`
	Status      string  `json:"status"`
	StatusText  string  `json:"status_text"`
}

type BillsResponse struct {
	Bills []BillResponse `json:"bills"`
}

type OverviewResponse struct {
	Totals       report.Totals        `json:"totals"`
	Groups       GroupsResponse       `json:"groups"`
	Distribution DistributionResponse `json:"distribution"`
	Bills        []BillResponse       `json:"bills"`
}
