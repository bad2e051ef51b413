package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studymate/courseapi/internal/app/models"
	"github.com/studymate/courseapi/internal/pkg/apperrors"
	"github.com/studymate/courseapi/internal/pkg/llm"
)

func TestAsk_BuildsTwoMessagePrompt(t *testing.T) {
	repo := &fakeCourseRepo{courses: []*models.Course{course(3, "Go", "Programming", "4.0")}}
	completer := &fakeCompleter{answer: "Take Go."}
	svc := NewChatService(NewContextAssembler(repo), completer, ChatOptions{MaxTokens: 500}, zerolog.Nop())

	id := int64(3)
	answer, err := svc.Ask(context.Background(), "What should I learn?", &id)
	require.NoError(t, err)
	assert.Equal(t, "Take Go.", answer)

	require.Len(t, completer.last.Messages, 2)
	assert.Equal(t, llm.RoleSystem, completer.last.Messages[0].Role)
	assert.Equal(t,
		"You are a helpful course advisor assistant. Use the following courses information to answer user questions:\n\nGo: Go description",
		completer.last.Messages[0].Content)
	assert.Equal(t, llm.UserMessage("What should I learn?"), completer.last.Messages[1])
	assert.Equal(t, 500, completer.last.MaxTokens)
	assert.Nil(t, completer.last.Temperature)
}

func TestAsk_TemperatureIsForwardedWhenSet(t *testing.T) {
	completer := &fakeCompleter{answer: "ok"}
	svc := NewChatService(NewContextAssembler(&fakeCourseRepo{}), completer, ChatOptions{MaxTokens: 100, Temperature: 0.5}, zerolog.Nop())

	_, err := svc.Ask(context.Background(), "hi", nil)
	require.NoError(t, err)
	require.NotNil(t, completer.last.Temperature)
	assert.Equal(t, float32(0.5), *completer.last.Temperature)
	assert.Contains(t, completer.last.Messages[0].Content, "No courses available.")
}

func TestAsk_ProviderFailureIsUpstream(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("rate limit exceeded")}
	svc := NewChatService(NewContextAssembler(&fakeCourseRepo{}), completer, ChatOptions{MaxTokens: 500}, zerolog.Nop())

	_, err := svc.Ask(context.Background(), "hi", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamFailure)
	assert.Equal(t, "rate limit exceeded", err.Error())
}

func TestAsk_StoreFailureIsUpstreamAndSkipsProvider(t *testing.T) {
	completer := &fakeCompleter{answer: "never"}
	svc := NewChatService(NewContextAssembler(&fakeCourseRepo{err: errors.New("db down")}), completer, ChatOptions{MaxTokens: 500}, zerolog.Nop())

	_, err := svc.Ask(context.Background(), "hi", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamFailure)
	assert.Contains(t, err.Error(), "db down")
	assert.Equal(t, 0, completer.calls)
}
