package dashboardHandler

import (
	dashboardService "FinanceTracker/internal/api/dashboard/service"
	"FinanceTracker/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type DashboardHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	dashboardService dashboardService.IDashboardService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	dashboardService dashboardService.IDashboardService,
) *DashboardHandler {
	return &DashboardHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) Start(srv fiber.Router) {
	dashboard := srv.Group("/dashboard", h.middleware.NewTokenMiddleware)

	dashboard.Get("/", h.Overview)
	dashboard.Get("/summary", h.Summary)
	dashboard.Get("/groups", h.Groups)
	dashboard.Get("/distribution", h.Distribution)
	dashboard.Get("/bills", h.Bills)
}
