// Package compose generates brew post copy and reply suggestions with an
// OpenAI-compatible chat model.
package compose

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	postPrompt = `You are a world-class barista and social media manager for "Wavegram", a premium third-wave coffee community. Write a short, aesthetic post (max 280 characters) about this topic: %q. Use an engaging, slightly sophisticated yet passionate tone about the art of the perfect pour. Include relevant emojis and 1-2 coffee-related hashtags.`

	replyPrompt = `Given the following coffee-related post: %q, suggest 3 short, enthusiastic replies from the perspective of an expert barista. Return only the replies separated by double pipes (||).`
)

// Canned replies returned when the model gives nothing usable.
var fallbackReplies = []string{"Love this brew!", "Drop the recipe!", "Coffee goals!"}

// ChatClient is the slice of the OpenAI client the composer needs.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Composer drafts post content and reply suggestions.
type Composer struct {
	client ChatClient
	model  string
	logger *slog.Logger
}

// NewComposer creates a composer. An empty model falls back to GPT-4o mini.
func NewComposer(client ChatClient, model string, logger *slog.Logger) *Composer {
	if model == "" {
		model = openai.GPT4oMini
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{client: client, model: model, logger: logger}
}

// BrewPost drafts post copy for a topic.
func (c *Composer) BrewPost(ctx context.Context, topic string) (string, error) {
	if strings.TrimSpace(topic) == "" {
		return "", fmt.Errorf("topic must not be empty")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.8,
		TopP:        0.95,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(postPrompt, topic),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("generating post: %w", err)
	}

	content := firstChoice(resp)
	if content == "" {
		return "", fmt.Errorf("generating post: model returned no content")
	}
	return content, nil
}

// SuggestReplies drafts up to three replies to a post. A model error or
// empty answer yields the canned fallbacks rather than failing the caller.
func (c *Composer) SuggestReplies(ctx context.Context, postContent string) []string {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(replyPrompt, postContent),
			},
		},
	})
	if err != nil {
		c.logger.Warn("reply suggestion failed", "error", err)
		return fallbackReplies
	}

	replies := splitReplies(firstChoice(resp))
	if len(replies) == 0 {
		return fallbackReplies
	}
	return replies
}

func firstChoice(resp openai.ChatCompletionResponse) string {
	if len(resp.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

func splitReplies(raw string) []string {
	var replies []string
	for _, part := range strings.Split(raw, "||") {
		if reply := strings.TrimSpace(part); reply != "" {
			replies = append(replies, reply)
		}
	}
	return replies
}
