package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Server.Bind != "127.0.0.1" || cfg.Server.Port != 38200 {
		t.Errorf("server defaults = %+v", cfg.Server)
	}
	if cfg.LLM.Provider != "" {
		t.Errorf("LLM provider = %q, want disabled by default", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", cfg.LLM.Model)
	}
	if cfg.Search.Results != 5 {
		t.Errorf("search results = %d, want 5", cfg.Search.Results)
	}
	if cfg.Lifespan.StageTimeoutSeconds != 30 || cfg.Lifespan.CacheDays != 30 ||
		cfg.Lifespan.DefaultMonths != 18 || cfg.Lifespan.Workers != 4 {
		t.Errorf("lifespan defaults = %+v", cfg.Lifespan)
	}
}

func TestListenAddr(t *testing.T) {
	cfg := Default()
	if got := cfg.ListenAddr(); got != "127.0.0.1:38200" {
		t.Errorf("ListenAddr = %q", got)
	}
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 38200 {
		t.Errorf("port = %d, want default", cfg.Server.Port)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
port = 9000

[llm]
provider = "ollama"
ollama_model = "llama3.2"

[lifespan]
default_months = 24
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Server.Bind != "127.0.0.1" {
		t.Errorf("bind = %q, want default kept", cfg.Server.Bind)
	}
	if cfg.LLM.Provider != "ollama" || cfg.LLM.OllamaModel != "llama3.2" {
		t.Errorf("llm = %+v", cfg.LLM)
	}
	if cfg.Lifespan.DefaultMonths != 24 {
		t.Errorf("default months = %d, want 24", cfg.Lifespan.DefaultMonths)
	}
	if cfg.Lifespan.Workers != 4 {
		t.Errorf("workers = %d, want default kept", cfg.Lifespan.Workers)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not toml ["), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("SERPAPI_API_KEY", "serp-env")
	t.Setenv("PARTWATCH_DB", "/tmp/alt.db")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.LLM.OpenAIKey != "sk-env" {
		t.Errorf("openai key = %q", cfg.LLM.OpenAIKey)
	}
	if cfg.LLM.Provider != "openai" {
		t.Errorf("provider = %q, want auto-enabled openai", cfg.LLM.Provider)
	}
	if cfg.Search.APIKey != "serp-env" || cfg.Search.Provider != "serpapi" {
		t.Errorf("search = %+v", cfg.Search)
	}
	if cfg.Database.Path != "/tmp/alt.db" {
		t.Errorf("db path = %q", cfg.Database.Path)
	}
}

func TestApplyEnvKeepsExplicitProvider(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")

	cfg := Default()
	cfg.LLM.Provider = "ollama"
	cfg.ApplyEnv()

	if cfg.LLM.Provider != "ollama" {
		t.Errorf("provider = %q, env should not override an explicit choice", cfg.LLM.Provider)
	}
	if cfg.LLM.OpenAIKey != "sk-env" {
		t.Errorf("key = %q, env key still applies", cfg.LLM.OpenAIKey)
	}
}
