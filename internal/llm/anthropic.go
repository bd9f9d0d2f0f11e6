package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicDefaultModel = "claude-sonnet-4-20250514"

// AnthropicProvider formats markdown using the Anthropic Messages API.
type AnthropicProvider struct {
	apiKey string
	model  string
}

// NewAnthropicProvider creates an Anthropic provider. An empty API key
// falls back to ANTHROPIC_API_KEY.
func NewAnthropicProvider(apiKey, model string) *AnthropicProvider {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if model == "" {
		model = anthropicDefaultModel
	}
	return &AnthropicProvider{apiKey: apiKey, model: model}
}

// Name returns the provider identifier.
func (p *AnthropicProvider) Name() string { return "anthropic" }

// Validate checks that an API key is available.
func (p *AnthropicProvider) Validate() error {
	if p.apiKey == "" {
		return errors.New("anthropic API key not configured (set ANTHROPIC_API_KEY or providers.anthropic.api_key)")
	}
	return nil
}

// Format sends the markdown through the Messages API.
func (p *AnthropicProvider) Format(ctx context.Context, markdown string, opts FormatOptions) (*FormatResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultFormatOptions().MaxTokens
	}

	client := anthropic.NewClient(option.WithAPIKey(p.apiKey))
	msg, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(p.model),
		MaxTokens:   int64(maxTokens),
		Temperature: anthropic.Float(opts.Temperature),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt(opts)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt(markdown))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	return &FormatResult{
		Markdown: sb.String(),
		Model:    string(msg.Model),
		Usage: TokenUsage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
			TotalTokens:  int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
		},
	}, nil
}
