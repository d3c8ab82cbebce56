package assistantHandler

import (
	assistantService "FinanceTracker/internal/api/assistant/service"
	"FinanceTracker/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type AssistantHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	assistantService assistantService.IAssistantService
	frameRate        rate.Limit
	frameBurst       int
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as assistantService.IAssistantService,
) *AssistantHandler {
	return &AssistantHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		assistantService: as,
		frameRate:        defaultFrameRate,
		frameBurst:       defaultFrameBurst,
	}
}

func (h *AssistantHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	assistant := srv.Group("/assistant", h.middleware.NewRateLimiter)
	assistant.Post("/categorize", h.middleware.NewTokenMiddleware, h.Categorize)
	assistant.Post("/chat", h.middleware.NewTokenMiddleware, h.Chat)

	assistant.Use("/ws", wsMiddleware, queryToken)
	assistant.Get("/ws", h.middleware.NewTokenMiddleware, websocket.New(h.handleChatWebSocket))
}

// queryToken lets browsers, which cannot set headers on a websocket handshake,
// pass the bearer token as ?token=.
func queryToken(c *fiber.Ctx) error {
	if c.Get(fiber.HeaderAuthorization) == "" {
		if token := c.Query("token"); token != "" {
			c.Request().Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		}
	}
	return c.Next()
}
