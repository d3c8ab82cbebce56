package dashboardHandler

import (
	"FinanceTracker/internal/api/dashboard"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"FinanceTracker/pkg/handlerUtil"
	jwtPkg "FinanceTracker/pkg/jwt"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

type viewFunc func(c context.Context, userID string, q dashboard.Query) (interface{}, error)

// serve runs the shared parse, auth and timeout steps around one dashboard view.
func (h *DashboardHandler) serve(ctx *fiber.Ctx, operation string, view viewFunc) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var query dashboard.Query
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

	res, err := view(c, userData.ID, query)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), operation)
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *DashboardHandler) Summary(ctx *fiber.Ctx) error {
	return h.serve(ctx, "dashboard_summary", func(c context.Context, userID string, _ dashboard.Query) (interface{}, error) {
		return h.dashboardService.Summary(c, userID)
	})
}

func (h *DashboardHandler) Groups(ctx *fiber.Ctx) error {
	return h.serve(ctx, "dashboard_groups", func(c context.Context, userID string, q dashboard.Query) (interface{}, error) {
		return h.dashboardService.Groups(c, userID, entity.ParseLocale(q.Locale))
	})
}

func (h *DashboardHandler) Distribution(ctx *fiber.Ctx) error {
	return h.serve(ctx, "dashboard_distribution", func(c context.Context, userID string, q dashboard.Query) (interface{}, error) {
		return h.dashboardService.Distribution(c, userID, q.View, entity.ParseLocale(q.Locale))
	})
}

func (h *DashboardHandler) Bills(ctx *fiber.Ctx) error {
	return h.serve(ctx, "dashboard_bills", func(c context.Context, userID string, q dashboard.Query) (interface{}, error) {
		return h.dashboardService.Bills(c, userID, entity.ParseLocale(q.Locale))
	})
}

func (h *DashboardHandler) Overview(ctx *fiber.Ctx) error {
	return h.serve(ctx, "dashboard_overview", func(c context.Context, userID string, q dashboard.Query) (interface{}, error) {
		return h.dashboardService.Overview(c, userID, q.View, entity.ParseLocale(q.Locale))
	})
}
