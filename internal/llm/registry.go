package llm

import (
	"fmt"
	"sort"
	"sync"

	"github.com/roboco-io/layout2md/internal/config"
)

// Registry manages LLM providers.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates a new provider registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Provider),
	}
}

// NewRegistryFromConfig builds a registry holding one provider per
// configured entry. Providers with missing credentials are still
// registered; Validate reports the problem at use time.
func NewRegistryFromConfig(cfg *config.Config) *Registry {
	r := NewRegistry()
	for name, pc := range cfg.Providers {
		var p Provider
		switch name {
		case "anthropic":
			p = NewAnthropicProvider(pc.APIKey, pc.Model)
		case "openai":
			p = NewOpenAIProvider(pc.APIKey, pc.Model)
		case "gemini":
			p = NewGeminiProvider(pc.APIKey, pc.Model)
		case "ollama":
			p = NewOllamaProvider(pc.Endpoint, pc.Model)
		default:
			continue
		}
		// Registration only fails on duplicates; config maps are unique.
		_ = r.Register(p)
	}
	return r
}

// Register adds a provider to the registry.
func (r *Registry) Register(p Provider) error {
	if p == nil {
		return fmt.Errorf("cannot register nil provider")
	}
	name := p.Name()
	if name == "" {
		return fmt.Errorf("provider name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("provider already registered: %s", name)
	}

	r.providers[name] = p
	return nil
}

// Get returns a provider by name.
func (r *Registry) Get(name string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("provider not found: %s", name)
	}
	return p, nil
}

// List returns all registered provider names (sorted).
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has checks if a provider is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.providers[name]
	return ok
}
