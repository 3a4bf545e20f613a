package openai

import (
	"context"
	"fmt"

	"agroshop-bot-be/pkg/advisor"

	openai "github.com/meguminnnnnnnnn/go-openai"
)

type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// Ensure OpenAIProvider implements Provider
var _ advisor.Provider = &OpenAIProvider{}

func NewOpenAIProvider(apiKey, modelName, baseURL string) *OpenAIProvider {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		model:  modelName,
	}
}

func (p *OpenAIProvider) Chat(ctx context.Context, history []advisor.Message, opts ...advisor.Option) (string, error) {
	options := &advisor.Options{
		Temperature: 0.7, // Default
	}
	for _, opt := range opts {
		opt(options)
	}

	msgs := make([]openai.ChatCompletionMessage, 0, len(history))
	for _, msg := range history {
		role := msg.Role
		if role == "model" {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}

	model := p.model
	if options.Model != "" {
		model = options.Model
	}

	temperature := float32(options.Temperature)
	req := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    msgs,
		Temperature: &temperature,
	}
	if options.MaxTokens > 0 {
		req.MaxTokens = options.MaxTokens
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string, opts ...advisor.Option) (string, error) {
	return p.Chat(ctx, []advisor.Message{{Role: "user", Content: prompt}}, opts...)
}
