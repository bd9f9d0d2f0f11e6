package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"google.golang.org/genai"
)

const geminiDefaultModel = "gemini-1.5-flash"

// GeminiProvider formats markdown using the Google Gemini API.
type GeminiProvider struct {
	apiKey string
	model  string
}

// NewGeminiProvider creates a Gemini provider. An empty API key falls
// back to GOOGLE_API_KEY.
func NewGeminiProvider(apiKey, model string) *GeminiProvider {
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if model == "" {
		model = geminiDefaultModel
	}
	return &GeminiProvider{apiKey: apiKey, model: model}
}

// Name returns the provider identifier.
func (p *GeminiProvider) Name() string { return "gemini" }

// Validate checks that an API key is available.
func (p *GeminiProvider) Validate() error {
	if p.apiKey == "" {
		return errors.New("gemini API key not configured (set GOOGLE_API_KEY or providers.gemini.api_key)")
	}
	return nil
}

// Format sends the markdown through the Gemini generate-content API.
func (p *GeminiProvider) Format(ctx context.Context, markdown string, opts FormatOptions) (*FormatResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultFormatOptions().MaxTokens
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client init failed: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, p.model,
		genai.Text(userPrompt(markdown)),
		&genai.GenerateContentConfig{
			Temperature:       genai.Ptr(float32(opts.Temperature)),
			MaxOutputTokens:   int32(maxTokens),
			SystemInstruction: genai.NewContentFromText(systemPrompt(opts), genai.RoleUser),
		})
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	usage := TokenUsage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
		usage.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}

	return &FormatResult{
		Markdown: resp.Text(),
		Model:    p.model,
		Usage:    usage,
	}, nil
}
