package assistantHandler

import (
	"FinanceTracker/internal/api/assistant"
	"FinanceTracker/internal/entity"
	"FinanceTracker/internal/middleware"
	contextPkg "FinanceTracker/pkg/context"
	"time"

	"github.com/gofiber/websocket/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"golang.org/x/time/rate"
)

const (
	maxReadTimeout = 5 * time.Minute
	replyTimeout   = 30 * time.Second

	// one chat message every two seconds per socket, with a small burst
	defaultFrameRate  = rate.Limit(0.5)
	defaultFrameBurst = 3
)

type socketError struct {
	Error string `json:"error"`
}

// handleChatWebSocket answers every text frame {message, history} with {reply, unavailable}.
func (h *AssistantHandler) handleChatWebSocket(c *websocket.Conn) {
	user, ok := c.Locals(middleware.UserKey).(entity.UserLoginData)
	if !ok {
		_ = c.WriteJSON(socketError{Error: "Unauthorized"})
		return
	}

	requestID, _ := c.Locals(middleware.RequestIDKey).(string)
	fields := logrus.Fields{"request_id": requestID, "user_id": user.ID}

	limiter := rate.NewLimiter(h.frameRate, h.frameBurst)

	h.log.WithFields(fields).Info("Assistant WebSocket client connected")
	defer h.log.WithFields(fields).Info("Assistant WebSocket client disconnected")

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.WithFields(fields).Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.WithFields(fields).Errorf("Assistant WebSocket error: %v", err)
			}
			break
		}

		if messageType != websocket.TextMessage {
			h.log.WithFields(fields).Warnf("Received unexpected message type: %d", messageType)
			continue
		}

		reply := h.answerFrame(requestID, user, limiter, message)

		if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			break
		}
		if err := c.WriteJSON(reply); err != nil {
			h.log.WithFields(fields).Errorf("Error writing JSON response: %v", err)
			break
		}
	}
}

// answerFrame turns one client frame into the value written back: a chat reply or
// a socketError. Frames beyond the connection's rate are refused without calling
// the assistant.
func (h *AssistantHandler) answerFrame(requestID string, user entity.UserLoginData, limiter *rate.Limiter, message []byte) interface{} {
	var req assistant.ChatRequest
	if err := jsoniter.Unmarshal(message, &req); err != nil {
		return socketError{Error: "invalid message"}
	}
	req.UserID = user.ID

	if err := h.validator.Struct(req); err != nil {
		return socketError{Error: "Validation failed: " + err.Error()}
	}

	if !limiter.Allow() {
		h.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    user.ID,
		}).Warn("Assistant WebSocket frame rate exceeded")
		return socketError{Error: middleware.ErrTooManyRequests.Error()}
	}

	ctx, cancel := context.WithTimeout(contextPkg.WithRequestID(context.Background(), requestID), replyTimeout)
	defer cancel()

	return h.assistantService.SendMessage(ctx, req)
}
