package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	ollamaDefaultEndpoint = "http://localhost:11434"
	ollamaDefaultModel    = "llama3.2"
)

// OllamaProvider formats markdown using a local Ollama server. Ollama has
// no SDK dependency; it speaks plain JSON over HTTP.
type OllamaProvider struct {
	endpoint string
	model    string
	client   *http.Client
}

// NewOllamaProvider creates an Ollama provider. An empty endpoint falls
// back to OLLAMA_HOST, then to the local default.
func NewOllamaProvider(endpoint, model string) *OllamaProvider {
	if endpoint == "" {
		endpoint = os.Getenv("OLLAMA_HOST")
	}
	if endpoint == "" {
		endpoint = ollamaDefaultEndpoint
	}
	if model == "" {
		model = ollamaDefaultModel
	}
	return &OllamaProvider{
		endpoint: endpoint,
		model:    model,
		client:   &http.Client{Timeout: 300 * time.Second},
	}
}

// Name returns the provider identifier.
func (p *OllamaProvider) Name() string { return "ollama" }

// Validate always succeeds; a local server needs no credentials.
func (p *OllamaProvider) Validate() error {
	if p.endpoint == "" {
		return errors.New("ollama endpoint not configured")
	}
	return nil
}

type ollamaRequest struct {
	Model   string         `json:"model"`
	System  string         `json:"system,omitempty"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

type ollamaResponse struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
}

// Format sends the markdown through the Ollama generate API.
func (p *OllamaProvider) Format(ctx context.Context, markdown string, opts FormatOptions) (*FormatResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(ollamaRequest{
		Model:  p.model,
		System: systemPrompt(opts),
		Prompt: userPrompt(markdown),
		Stream: false,
		Options: map[string]any{
			"temperature": opts.Temperature,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode ollama request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ollama error (status %d): %s", resp.StatusCode, string(body))
	}

	var out ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode ollama response: %w", err)
	}

	return &FormatResult{
		Markdown: out.Response,
		Model:    out.Model,
		Usage: TokenUsage{
			InputTokens:  out.PromptEvalCount,
			OutputTokens: out.EvalCount,
			TotalTokens:  out.PromptEvalCount + out.EvalCount,
		},
	}, nil
}
