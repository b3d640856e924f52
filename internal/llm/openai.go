package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultOpenAIURL = "https://api.openai.com/v1/chat/completions"

// OpenAI calls the OpenAI chat completions API directly.
type OpenAI struct {
	apiKey string
	model  string
	url    string
	client *http.Client
}

// NewOpenAI creates a new OpenAI API client. An empty url uses the public
// endpoint; overriding it supports OpenAI-compatible servers and tests.
func NewOpenAI(apiKey, model, url string) *OpenAI {
	if url == "" {
		url = defaultOpenAIURL
	}
	return &OpenAI{
		apiKey: apiKey,
		model:  model,
		url:    url,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Complete sends a system instruction and user prompt to the chat API.
func (o *OpenAI) Complete(ctx context.Context, system, prompt string) (*Response, error) {
	messages := []map[string]string{}
	if system != "" {
		messages = append(messages, map[string]string{"role": "system", "content": system})
	}
	messages = append(messages, map[string]string{"role": "user", "content": prompt})

	reqBody := map[string]any{
		"model":       o.model,
		"messages":    messages,
		"temperature": 0.0,
		"max_tokens":  64,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", o.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai api status %d: %s", resp.StatusCode, respBody)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	text := ""
	if len(result.Choices) > 0 {
		text = result.Choices[0].Message.Content
	}

	return &Response{
		Content:    text,
		Provider:   "openai",
		TokensUsed: result.Usage.PromptTokens + result.Usage.CompletionTokens,
	}, nil
}
