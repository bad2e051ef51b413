package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"
)

// EinoCompleter adapts any eino chat model to Completer
type EinoCompleter struct {
	chatModel model.BaseChatModel
}

// NewEinoCompleter wraps an eino chat model
func NewEinoCompleter(chatModel model.BaseChatModel) *EinoCompleter {
	return &EinoCompleter{chatModel: chatModel}
}

func toSchemaMessages(messages []Message) []*schema.Message {
	out := make([]*schema.Message, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			out = append(out, schema.SystemMessage(m.Content))
		case RoleAssistant:
			out = append(out, schema.AssistantMessage(m.Content, nil))
		default:
			out = append(out, schema.UserMessage(m.Content))
		}
	}
	return out
}

// Complete runs a single Generate call
func (e *EinoCompleter) Complete(ctx context.Context, req Request) (string, error) {
	var opts []model.Option
	if req.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(req.MaxTokens))
	}
	if req.Temperature != nil {
		opts = append(opts, model.WithTemperature(*req.Temperature))
	}

	msg, err := e.chatModel.Generate(ctx, toSchemaMessages(req.Messages), opts...)
	if err != nil {
		return "", fmt.Errorf("chat model generate failed: %w", err)
	}
	if msg == nil {
		return "", ErrEmptyCompletion
	}
	return msg.Content, nil
}

// GeminiConfig holds the settings for the Gemini-backed completer
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// NewGeminiCompleter builds a genai client and an eino Gemini chat model on top of it.
func NewGeminiCompleter(ctx context.Context, cfg GeminiConfig) (*EinoCompleter, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client: client,
		Model:  cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating Gemini chat model: %w", err)
	}

	return NewEinoCompleter(chatModel), nil
}
