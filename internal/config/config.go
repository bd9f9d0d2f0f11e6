// Package config manages application configuration.
package config

// Config represents the application configuration.
type Config struct {
	DefaultProvider string              `yaml:"default_provider"`
	Providers       map[string]Provider `yaml:"providers"`
	Format          FormatConfig        `yaml:"format"`
	Render          RenderConfig        `yaml:"render"`
}

// Provider represents an LLM provider configuration.
type Provider struct {
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
	Endpoint  string `yaml:"endpoint,omitempty"` // for Ollama or custom endpoints
}

// FormatConfig contains Stage 2 (LLM) formatting options.
type FormatConfig struct {
	Temperature float64 `yaml:"temperature"`
	Language    string  `yaml:"language"`
}

// RenderConfig contains Stage 1 rendering options.
type RenderConfig struct {
	MaxImageWidth int    `yaml:"max_image_width"`
	Attribution   string `yaml:"attribution"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultProvider: "anthropic",
		Providers: map[string]Provider{
			"openai": {
				APIKey:    "${OPENAI_API_KEY}",
				Model:     "gpt-4o-mini",
				MaxTokens: 8192,
			},
			"anthropic": {
				APIKey:    "${ANTHROPIC_API_KEY}",
				Model:     "claude-sonnet-4-20250514",
				MaxTokens: 8192,
			},
			"gemini": {
				APIKey:    "${GOOGLE_API_KEY}",
				Model:     "gemini-1.5-flash",
				MaxTokens: 8192,
			},
			"ollama": {
				Endpoint:  "http://localhost:11434",
				Model:     "llama3.2",
				MaxTokens: 8192,
			},
		},
		Format: FormatConfig{
			Temperature: 0.3,
			Language:    "en",
		},
		Render: RenderConfig{
			MaxImageWidth: 100,
			Attribution:   "Generated by layout2md",
		},
	}
}

// GetProvider returns the provider configuration by name.
func (c *Config) GetProvider(name string) (*Provider, bool) {
	p, ok := c.Providers[name]
	if !ok {
		return nil, false
	}
	return &p, true
}

// GetDefaultProvider returns the default provider configuration.
func (c *Config) GetDefaultProvider() (*Provider, bool) {
	return c.GetProvider(c.DefaultProvider)
}
