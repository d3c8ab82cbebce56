package config

import (
	assistantHandler "FinanceTracker/internal/api/assistant/handler"
	assistantService "FinanceTracker/internal/api/assistant/service"
	authHandler "FinanceTracker/internal/api/auth/handler"
	authService "FinanceTracker/internal/api/auth/service"
	categoryHandler "FinanceTracker/internal/api/category/handler"
	categoryService "FinanceTracker/internal/api/category/service"
	dashboardHandler "FinanceTracker/internal/api/dashboard/handler"
	dashboardService "FinanceTracker/internal/api/dashboard/service"
	transactionHandler "FinanceTracker/internal/api/transaction/handler"
	transactionService "FinanceTracker/internal/api/transaction/service"
	"FinanceTracker/internal/middleware"
	"FinanceTracker/pkg/bcrypt"
	"FinanceTracker/pkg/gemini"
	"FinanceTracker/pkg/kvstore"
	"FinanceTracker/pkg/redis"
	"FinanceTracker/pkg/s3"
	"FinanceTracker/pkg/utils"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	storage      Storage
	log          *logrus.Logger
	middleware   middleware.Middleware
	validator    *validator.Validate
	utils        utils.IUtils
	bcryptUtils  bcrypt.IBcrypt
	handlers     []handler
	redisServer  redis.IRedis
	geminiClient gemini.IGemini
	s3Client     s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.storage.DB == nil && server.storage.Store == nil {
		return nil, fmt.Errorf("storage is required")
	}
	if server.middleware == nil {
		server.middleware = middleware.New(server.log)
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.utils == nil {
		server.utils = utils.New()
	}
	if server.bcryptUtils == nil {
		server.bcryptUtils = bcrypt.New()
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithStorage opens the backend named by STORAGE_DRIVER. The redis driver needs
// WithRedisServer to have run first.
func WithStorage() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before storage")
		}
		storage, err := OpenStorage(s.log, s.redisServer)
		if err != nil {
			return err
		}
		s.storage = storage
		return nil
	}
}

// WithStore injects an already built key-value store, mostly for tests.
func WithStore(store kvstore.Store) ServerOption {
	return func(s *Server) error {
		s.storage = Storage{Store: store}
		return nil
	}
}

func WithRedisServer() ServerOption {
	return func(s *Server) error {
		client, err := redis.New()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("Redis disabled: %v", err)
			}
			return nil
		}
		s.redisServer = client
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("S3 archive disabled: %v", err)
			}
			return nil
		}
		s.s3Client = client
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("Gemini assistant disabled: %v", err)
			}
			return nil
		}
		s.geminiClient = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	repos := s.storage.Repositories(s.log)
	authRepo, transactionRepo, categoryRepo := repos.Auth, repos.Transactions, repos.Categories

	// Auth Domain
	authServices := authService.New(s.log, authRepo, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware)

	// Transactions
	transactionServices := transactionService.New(s.log, transactionRepo, categoryRepo, s.s3Client, s.utils)
	transactionHandlers := transactionHandler.New(s.log, s.validator, s.middleware, transactionServices)

	// Categories
	categoryServices := categoryService.New(s.log, categoryRepo, transactionRepo, s.utils)
	categoryHandlers := categoryHandler.New(s.log, s.validator, s.middleware, categoryServices)

	// Dashboard
	dashboardServices := dashboardService.New(s.log, transactionRepo, categoryRepo)
	dashboardHandlers := dashboardHandler.New(s.log, s.validator, s.middleware, dashboardServices)

	// Assistant
	assistantServices := assistantService.New(s.log, s.geminiClient, s.redisServer, transactionRepo, categoryRepo)
	assistantHandlers := assistantHandler.New(s.log, s.validator, s.middleware, assistantServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, transactionHandlers, categoryHandlers, dashboardHandlers, assistantHandlers)
}

// Mount wires middleware and every registered handler under /api/v1.
func (s *Server) Mount() {
	s.engine.Use(recover.New())
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())

	router := s.engine.Group("/api/v1")
	for _, h := range s.handlers {
		h.Start(router)
	}
}

func (s *Server) App() *fiber.App {
	return s.engine
}

func (s *Server) Run() error {
	s.Mount()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

// Shutdown stops the HTTP listener and releases every optional client.
func (s *Server) Shutdown() error {
	var errs []error

	if err := s.engine.Shutdown(); err != nil {
		errs = append(errs, err)
	}
	if s.geminiClient != nil {
		if err := s.geminiClient.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.redisServer != nil {
		if err := s.redisServer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.storage.Close(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
