package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultSerpAPIURL = "https://serpapi.com/search"

// SerpAPI queries Google through the SerpAPI service.
type SerpAPI struct {
	apiKey   string
	endpoint string
	num      int
	client   *http.Client
}

// NewSerpAPI creates a new SerpAPI client. An empty endpoint uses the public
// service; overriding it supports tests.
func NewSerpAPI(apiKey, endpoint string, num int) *SerpAPI {
	if endpoint == "" {
		endpoint = defaultSerpAPIURL
	}
	return &SerpAPI{
		apiKey:   apiKey,
		endpoint: endpoint,
		num:      num,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Search runs a keyword query and returns the top organic results.
func (s *SerpAPI) Search(ctx context.Context, query string) ([]Result, error) {
	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("api_key", s.apiKey)
	params.Set("num", strconv.Itoa(s.num))

	req, err := http.NewRequestWithContext(ctx, "GET", s.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serpapi: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi status %d: %s", resp.StatusCode, respBody)
	}

	var result struct {
		OrganicResults []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
			Link    string `json:"link"`
		} `json:"organic_results"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	results := make([]Result, 0, len(result.OrganicResults))
	for _, r := range result.OrganicResults {
		results = append(results, Result{Title: r.Title, Snippet: r.Snippet, Link: r.Link})
	}
	return results, nil
}
