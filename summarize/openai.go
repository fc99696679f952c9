package summarize

import (
	"context"
	"errors"
	"strings"

	"ewintr.nl/vidsum/model"
	"github.com/sashabaranov/go-openai"
)

const (
	maxSummaryTokens = 1500
	// low randomness, two runs over the same transcript should largely agree
	summaryTemperature = 0.3
)

type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(apiKey, model string) *OpenAI {
	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (o *OpenAI) Generate(ctx context.Context, transcript string, style model.SummaryStyle) (string, error) {
	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: o.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: Prompt(transcript, style),
				},
			},
			MaxTokens:   maxSummaryTokens,
			Temperature: summaryTemperature,
		})
	if err != nil {
		return "", &GenerationError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &GenerationError{Err: errors.New("completion response has no choices")}
	}

	return strings.TrimSpace(resp.Choices[len(resp.Choices)-1].Message.Content), nil
}
