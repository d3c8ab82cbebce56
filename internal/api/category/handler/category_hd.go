package categoryHandler

import (
	"FinanceTracker/internal/api/category"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"FinanceTracker/pkg/handlerUtil"
	jwtPkg "FinanceTracker/pkg/jwt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func toResponse(c entity.CustomCategory) category.CategoryResponse {
	res := category.CategoryResponse{
		Key:   c.Key,
		Name:  c.Name,
		Color: c.Color,
	}
	if !c.CreatedAt.IsZero() {
		res.CreatedAt = c.CreatedAt.Format(time.RFC3339)
	}
	return res
}

func (h *CategoryHandler) ListCategories(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	categories, err := h.categoryService.ListCategories(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_categories")
	}

	res := category.CategoryListResponse{Categories: make([]category.CategoryResponse, 0, len(categories))}
	for _, cat := range categories {
		res.Categories = append(res.Categories, toResponse(cat))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *CategoryHandler) CategoryTable(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var query category.LocaleQuery
	if err := ctx.QueryParser(&query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if err := h.validator.Struct(query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	table, err := h.categoryService.CategoryTable(c, userData.ID, entity.ParseLocale(query.Locale))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "category_table")
	}

	res := category.CategoryTableResponse{Locale: string(table.Locale())}
	for _, info := range table.All() {
		res.Categories = append(res.Categories, category.CategoryTableEntry{
			Key:    info.Key,
			Name:   info.Name,
			Color:  info.Color,
			Custom: info.Custom,
		})
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *CategoryHandler) CreateCategory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req category.CreateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	req.UserID = userData.ID

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	created, err := h.categoryService.CreateCategory(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_category")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, toResponse(created))
	}
}

func (h *CategoryHandler) DeleteCategory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	key, err := url.PathUnescape(ctx.Params("key"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, category.ErrCategoryNotFound, ctx.Path(), "delete_category")
	}

	if err := h.categoryService.DeleteCategory(c, userData.ID, key); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_category")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusNoContent, nil)
	}
}
