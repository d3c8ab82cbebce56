package dashboard

import (
	"FinanceTracker/pkg/response"
	"net/http"
)

var (
	ErrInvalidViewMode = response.NewError(http.StatusBadRequest, "view must be week or month")
	ErrLoadDashboard   = response.NewError(http.StatusInternalServerError, "failed to load dashboard data")
)
