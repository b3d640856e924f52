// Package websearch provides keyword web search used as evidence for the
// lifespan cascade's search-backed stage.
package websearch

import (
	"context"
	"fmt"

	"github.com/partwatch/partwatch/internal/config"
)

// Result is a single organic search hit.
type Result struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// Client is the interface for search providers.
type Client interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

// NewClient creates a search client based on the config provider setting.
func NewClient(cfg config.SearchConfig) (Client, error) {
	switch cfg.Provider {
	case "serpapi":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("serpapi provider requires SERPAPI_API_KEY or config")
		}
		num := cfg.Results
		if num <= 0 {
			num = 5
		}
		return NewSerpAPI(cfg.APIKey, cfg.Endpoint, num), nil
	default:
		return nil, fmt.Errorf("unknown search provider: %q", cfg.Provider)
	}
}
