package categoryHandler

import (
	categoryService "FinanceTracker/internal/api/category/service"
	"FinanceTracker/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	categoryService categoryService.ICategoryService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	categoryService categoryService.ICategoryService,
) *CategoryHandler {
	return &CategoryHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) Start(srv fiber.Router) {
	categories := srv.Group("/categories", h.middleware.NewTokenMiddleware)

	categories.Get("/", h.ListCategories)
	categories.Get("/all", h.CategoryTable)
	categories.Post("/", h.CreateCategory)
	categories.Delete("/:key", h.DeleteCategory)
}
