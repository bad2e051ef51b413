// Package llm talks to hosted chat-completion providers. Each provider is a
// Completer so the chat gateway never depends on a concrete vendor.
package llm

import (
	"context"
	"errors"
)

// Role is the author of a chat message
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ErrEmptyCompletion is returned when a provider answers without any choice.
var ErrEmptyCompletion = errors.New("completion provider returned no choices")

// Message represents a chat message.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// SystemMessage builds a system-role message
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage builds a user-role message
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Request is one completion call. Zero MaxTokens and nil Temperature leave
// the provider defaults in place.
type Request struct {
	Messages    []Message
	MaxTokens   int
	Temperature *float32
}

// Completer sends a conversation to a model and returns the first answer text.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

func truncate(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
