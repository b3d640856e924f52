package config

import "fmt"

// Config holds all partwatch configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	LLM      LLMConfig      `toml:"llm"`
	Search   SearchConfig   `toml:"search"`
	Lifespan LifespanConfig `toml:"lifespan"`
}

type ServerConfig struct {
	Bind string `toml:"bind"`
	Port int    `toml:"port"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type LLMConfig struct {
	Provider    string `toml:"provider"`     // "openai", "ollama", or "" (AI stage disabled)
	Model       string `toml:"model"`        // e.g. "gpt-4o-mini"
	OpenAIKey   string `toml:"openai_key"`
	OpenAIURL   string `toml:"openai_url"`   // override for OpenAI-compatible endpoints
	OllamaURL   string `toml:"ollama_url"`
	OllamaModel string `toml:"ollama_model"` // e.g. "llama3.2"
}

type SearchConfig struct {
	Provider string `toml:"provider"` // "serpapi" or "" (search stage disabled)
	APIKey   string `toml:"api_key"`
	Endpoint string `toml:"endpoint"` // override for testing
	Results  int    `toml:"results"`  // top-N organic results fed to the analyst prompt
}

type LifespanConfig struct {
	StageTimeoutSeconds int `toml:"stage_timeout_seconds"` // per cascade stage
	CacheDays           int `toml:"cache_days"`            // 0 disables the persistent cache
	DefaultMonths       int `toml:"default_months"`        // fallback for unclassified parts
	Workers             int `toml:"workers"`               // parallel lifespan resolutions
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Bind: "127.0.0.1",
			Port: 38200,
		},
		Database: DatabaseConfig{
			Path: "", // resolved at runtime via store.DefaultDBPath()
		},
		LLM: LLMConfig{
			Provider: "", // enabled when a key is configured
			Model:    "gpt-4o-mini",
		},
		Search: SearchConfig{
			Provider: "",
			Results:  5,
		},
		Lifespan: LifespanConfig{
			StageTimeoutSeconds: 30,
			CacheDays:           30,
			DefaultMonths:       18,
			Workers:             4,
		},
	}
}

// ListenAddr returns the bind:port address string.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Bind, c.Server.Port)
}
