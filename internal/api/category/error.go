package category

import "FinanceTracker/pkg/response"

var (
	ErrCategoryNotFound = response.NewError(404, "category not found")
	ErrCategoryInUse    = response.NewError(409, "category is used by existing transactions")
	ErrInvalidName      = response.NewError(400, "category name must be 1 to 50 characters")
	ErrInvalidColor     = response.NewError(400, "category color must be a #RRGGBB hex value")
	ErrCreateCategory   = response.NewError(500, "failed to create category")
	ErrDeleteCategory   = response.NewError(500, "failed to delete category")
)
