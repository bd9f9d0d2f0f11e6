package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

const openaiDefaultModel = "gpt-4o-mini"

// OpenAIProvider formats markdown using the OpenAI chat completions API.
type OpenAIProvider struct {
	apiKey string
	model  string
}

// NewOpenAIProvider creates an OpenAI provider. An empty API key falls
// back to OPENAI_API_KEY.
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if model == "" {
		model = openaiDefaultModel
	}
	return &OpenAIProvider{apiKey: apiKey, model: model}
}

// Name returns the provider identifier.
func (p *OpenAIProvider) Name() string { return "openai" }

// Validate checks that an API key is available.
func (p *OpenAIProvider) Validate() error {
	if p.apiKey == "" {
		return errors.New("openai API key not configured (set OPENAI_API_KEY or providers.openai.api_key)")
	}
	return nil
}

// Format sends the markdown through the chat completions API.
func (p *OpenAIProvider) Format(ctx context.Context, markdown string, opts FormatOptions) (*FormatResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultFormatOptions().MaxTokens
	}

	client := openai.NewClient(p.apiKey)
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		MaxTokens:   maxTokens,
		Temperature: float32(opts.Temperature),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(opts)},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(markdown)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("openai response contained no choices")
	}

	return &FormatResult{
		Markdown: resp.Choices[0].Message.Content,
		Model:    resp.Model,
		Usage: TokenUsage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}
