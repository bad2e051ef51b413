package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/studymate/courseapi/internal/pkg/apperrors"
	"github.com/studymate/courseapi/internal/pkg/llm"
)

const advisorPrompt = "You are a helpful course advisor assistant. Use the following courses information to answer user questions:\n\n"

// ChatService defines the interface for the course advisor chat
type ChatService interface {
	Ask(ctx context.Context, message string, courseContext *int64) (string, error)
}

// ChatOptions bound every completion call
type ChatOptions struct {
	MaxTokens   int
	Temperature float64
}

// chatServiceImpl implements ChatService
type chatServiceImpl struct {
	assembler *ContextAssembler
	completer llm.Completer
	opts      ChatOptions
	logger    zerolog.Logger
}

// NewChatService creates a new ChatService
func NewChatService(assembler *ContextAssembler, completer llm.Completer, opts ChatOptions, logger zerolog.Logger) ChatService {
	return &chatServiceImpl{
		assembler: assembler,
		completer: completer,
		opts:      opts,
		logger:    logger,
	}
}

// BuildPrompt returns the system and user messages sent for one question
func BuildPrompt(contextText, message string) []llm.Message {
	return []llm.Message{
		llm.SystemMessage(advisorPrompt + contextText),
		llm.UserMessage(message),
	}
}

// Ask assembles the course context and forwards the question to the completion provider.
// Every failure, store or provider, comes back as an upstream error carrying its text.
func (s *chatServiceImpl) Ask(ctx context.Context, message string, courseContext *int64) (string, error) {
	contextText, err := s.assembler.Build(ctx, courseContext)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to assemble course context")
		return "", apperrors.NewUpstreamError(err)
	}

	req := llm.Request{
		Messages:  BuildPrompt(contextText, message),
		MaxTokens: s.opts.MaxTokens,
	}
	if s.opts.Temperature > 0 {
		t := float32(s.opts.Temperature)
		req.Temperature = &t
	}

	answer, err := s.completer.Complete(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Msg("Completion provider call failed")
		return "", apperrors.NewUpstreamError(err)
	}

	s.logger.Debug().Int("contextLength", len(contextText)).Int("answerLength", len(answer)).Msg("Chat answered")
	return answer, nil
}
