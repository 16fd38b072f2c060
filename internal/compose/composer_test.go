package compose_test

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"

	"github.com/twcoffee/wavegram/internal/compose"
)

type fakeChat struct {
	reply string
	err   error
	seen  openai.ChatCompletionRequest
}

func (f *fakeChat) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.seen = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.reply}},
		},
	}, nil
}

func TestBrewPost(t *testing.T) {
	chat := &fakeChat{reply: "  Slow mornings, slower pours. #Wavegram  "}
	composer := compose.NewComposer(chat, "test-model", nil)

	content, err := composer.BrewPost(context.Background(), "pour-over ritual")
	require.NoError(t, err)
	require.Equal(t, "Slow mornings, slower pours. #Wavegram", content)
	require.Equal(t, "test-model", chat.seen.Model)
	require.Contains(t, chat.seen.Messages[0].Content, "pour-over ritual")
}

func TestBrewPost_EmptyTopic(t *testing.T) {
	composer := compose.NewComposer(&fakeChat{}, "", nil)
	_, err := composer.BrewPost(context.Background(), "   ")
	require.Error(t, err)
}

func TestBrewPost_ModelError(t *testing.T) {
	chat := &fakeChat{err: errors.New("rate limited")}
	composer := compose.NewComposer(chat, "", nil)
	_, err := composer.BrewPost(context.Background(), "espresso")
	require.Error(t, err)
}

func TestSuggestReplies_ParsesPipes(t *testing.T) {
	chat := &fakeChat{reply: "Nice crema! || Drop the grind size? ||  What beans? "}
	composer := compose.NewComposer(chat, "", nil)

	replies := composer.SuggestReplies(context.Background(), "dialing in a new roast")
	require.Equal(t, []string{"Nice crema!", "Drop the grind size?", "What beans?"}, replies)
}

func TestSuggestReplies_FallsBackOnError(t *testing.T) {
	chat := &fakeChat{err: errors.New("rate limited")}
	composer := compose.NewComposer(chat, "", nil)

	replies := composer.SuggestReplies(context.Background(), "anything")
	require.Len(t, replies, 3)
	require.Equal(t, "Love this brew!", replies[0])
}

func TestSuggestReplies_FallsBackOnEmptyAnswer(t *testing.T) {
	chat := &fakeChat{reply: "   "}
	composer := compose.NewComposer(chat, "", nil)
	require.Len(t, composer.SuggestReplies(context.Background(), "anything"), 3)
}
