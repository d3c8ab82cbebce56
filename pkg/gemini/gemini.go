package gemini

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	DefaultModel = "gemini-2.5-flash"

	RoleUser  = "user"
	RoleModel = "model"
)

var (
	ErrMissingAPIKey  = errors.New("gemini API key is required")
	ErrEmptyResponse  = errors.New("no response from Gemini API")
	ErrUnexpectedPart = errors.New("unexpected response format from Gemini API")
)

// Message is one turn of a conversation as the chat endpoint exchanges it.
type Message struct {
	Role string `json:"role" validate:"required,oneof=user model"`
	Text string `json:"text" validate:"required"`
}

type IGemini interface {
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
	Chat(ctx context.Context, systemInstruction string, history []Message, message string) (string, error)
	Close() error
}

type geminiClient struct {
	modelName string
	client    *genai.Client
}

func NewGeminiClient() (IGemini, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if modelName == "" {
		modelName = DefaultModel
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		modelName: modelName,
		client:    client,
	}, nil
}

// GenerateJSON asks the model for a single JSON document constrained by schema.
func (g *geminiClient) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.SetTemperature(0)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = schema

	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	return firstText(res)
}

func (g *geminiClient) Chat(ctx context.Context, systemInstruction string, history []Message, message string) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	if systemInstruction != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemInstruction)},
		}
	}

	cs := model.StartChat()
	for _, m := range history {
		cs.History = append(cs.History, &genai.Content{
			Role:  m.Role,
			Parts: []genai.Part{genai.Text(m.Text)},
		})
	}

	res, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", err
	}

	return firstText(res)
}

func (g *geminiClient) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func firstText(res *genai.GenerateContentResponse) (string, error) {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		text, ok := part.(genai.Text)
		if !ok {
			return "", ErrUnexpectedPart
		}
		sb.WriteString(string(text))
	}

	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}

	return sb.String(), nil
}
