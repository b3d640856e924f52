package websearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/partwatch/partwatch/internal/config"
)

func TestNewClientSerpAPI(t *testing.T) {
	client, err := NewClient(config.SearchConfig{Provider: "serpapi", APIKey: "key"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, ok := client.(*SerpAPI); !ok {
		t.Errorf("expected *SerpAPI, got %T", client)
	}
}

func TestNewClientSerpAPIMissingKey(t *testing.T) {
	if _, err := NewClient(config.SearchConfig{Provider: "serpapi"}); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestNewClientUnknownProvider(t *testing.T) {
	if _, err := NewClient(config.SearchConfig{Provider: "bing"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestSerpAPISearch(t *testing.T) {
	var gotQuery, gotKey, gotNum string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotKey = r.URL.Query().Get("api_key")
		gotNum = r.URL.Query().Get("num")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"organic_results":[
			{"title":"Mahle OC 195 service guide","snippet":"Replace every 12 months","link":"https://example.com/a"},
			{"title":"Forum thread","snippet":"mine lasted two years","link":"https://example.com/b"}
		]}`))
	}))
	defer srv.Close()

	client := NewSerpAPI("test-key", srv.URL, 5)
	results, err := client.Search(context.Background(), "oil filter lifespan")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if gotQuery != "oil filter lifespan" {
		t.Errorf("q = %q", gotQuery)
	}
	if gotKey != "test-key" {
		t.Errorf("api_key = %q", gotKey)
	}
	if gotNum != "5" {
		t.Errorf("num = %q", gotNum)
	}

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Snippet != "Replace every 12 months" {
		t.Errorf("first snippet = %q", results[0].Snippet)
	}
	if results[1].Link != "https://example.com/b" {
		t.Errorf("second link = %q", results[1].Link)
	}
}

func TestSerpAPISearchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewSerpAPI("bad-key", srv.URL, 5)
	if _, err := client.Search(context.Background(), "anything"); err == nil {
		t.Error("expected error for non-200 status")
	}
}

func TestSerpAPISearchNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewSerpAPI("key", srv.URL, 5)
	results, err := client.Search(context.Background(), "obscure part")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}
