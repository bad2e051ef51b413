package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatModel struct {
	input   []*schema.Message
	options *model.Options
	reply   *schema.Message
	err     error
}

func (f *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.input = input
	f.options = model.GetCommonOptions(&model.Options{}, opts...)
	return f.reply, f.err
}

func (f *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

func TestEinoCompleter_MapsMessagesAndOptions(t *testing.T) {
	fake := &fakeChatModel{reply: schema.AssistantMessage("Try Go in Depth.", nil)}
	completer := NewEinoCompleter(fake)

	temperature := float32(0.2)
	content, err := completer.Complete(context.Background(), Request{
		Messages: []Message{
			SystemMessage("context"),
			{Role: RoleAssistant, Content: "earlier answer"},
			UserMessage("which course?"),
		},
		MaxTokens:   500,
		Temperature: &temperature,
	})
	require.NoError(t, err)
	assert.Equal(t, "Try Go in Depth.", content)

	require.Len(t, fake.input, 3)
	assert.Equal(t, schema.System, fake.input[0].Role)
	assert.Equal(t, "context", fake.input[0].Content)
	assert.Equal(t, schema.Assistant, fake.input[1].Role)
	assert.Equal(t, schema.User, fake.input[2].Role)

	require.NotNil(t, fake.options.MaxTokens)
	assert.Equal(t, 500, *fake.options.MaxTokens)
	require.NotNil(t, fake.options.Temperature)
	assert.Equal(t, temperature, *fake.options.Temperature)
}

func TestEinoCompleter_PropagatesError(t *testing.T) {
	boom := errors.New("quota exceeded")
	completer := NewEinoCompleter(&fakeChatModel{err: boom})

	_, err := completer.Complete(context.Background(), Request{Messages: []Message{UserMessage("hi")}})
	assert.ErrorIs(t, err, boom)
}

func TestEinoCompleter_NilReply(t *testing.T) {
	completer := NewEinoCompleter(&fakeChatModel{})

	_, err := completer.Complete(context.Background(), Request{Messages: []Message{UserMessage("hi")}})
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}
