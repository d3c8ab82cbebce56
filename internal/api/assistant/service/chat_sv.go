package assistantService

import (
	"FinanceTracker/internal/api/assistant"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"FinanceTracker/pkg/gemini"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// SendMessage answers with a sentinel reply instead of an error, so the caller can
// always render something.
func (s *assistantService) SendMessage(ctx context.Context, req assistant.ChatRequest) assistant.ChatResponse {
	requestID := contextPkg.GetRequestID(ctx)

	if s.gemini == nil {
		return assistant.ChatResponse{Reply: assistant.AssistantUnavailableReply, Unavailable: true}
	}

	txs, err := s.loadTransactions(ctx, req.UserID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load transactions for chat")
		return assistant.ChatResponse{Reply: assistant.ChatErrorReply}
	}

	instruction, err := s.systemInstruction(txs)
	if err != nil {
		return assistant.ChatResponse{Reply: assistant.ChatErrorReply}
	}

	reply, err := s.gemini.Chat(ctx, instruction, chatHistory(req.History), req.Message)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Error communicating with Gemini")
		return assistant.ChatResponse{Reply: assistant.ChatErrorReply}
	}

	return assistant.ChatResponse{Reply: reply}
}

func (s *assistantService) loadTransactions(ctx context.Context, userID string) ([]entity.Transaction, error) {
	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		return nil, err
	}
	return repo.Transactions.GetTransactionsByUserID(ctx, userID)
}

func (s *assistantService) systemInstruction(txs []entity.Transaction) (string, error) {
	var sb strings.Builder
	sb.WriteString("You are Jorginho, a friendly and insightful financial assistant. Analyse the user's financial data and answer their questions clearly and concisely.\n")
	sb.WriteString("- The user's transactions are given below as JSON.\n")
	sb.WriteString("- Use only this data to answer. Never invent or assume information; if the answer is not in the data, say so.\n")
	sb.WriteString("- Offer useful summaries and insights based on the data.\n")
	sb.WriteString("- Reply in the language the user writes in.\n")
	sb.WriteString("- Today's date is " + s.now().In(s.location).Format("2006-01-02") + ".\n\n")
	sb.WriteString("User transactions:\n")

	if len(txs) == 0 {
		sb.WriteString("No transactions yet.")
		return sb.String(), nil
	}

	raw, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(txs, "", "  ")
	if err != nil {
		return "", err
	}
	sb.Write(raw)

	return sb.String(), nil
}

// chatHistory drops the client's opening greeting, which the model never said.
func chatHistory(history []gemini.Message) []gemini.Message {
	if len(history) > 0 && history[0].Role == gemini.RoleModel {
		return history[1:]
	}
	return history
}
