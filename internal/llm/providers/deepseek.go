package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/config"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging/types"
)

const defaultDeepSeekBaseURL = "https://api.deepseek.com/v1"

// DeepSeekProvider implements the LLM provider interface against DeepSeek's
// OpenAI-compatible chat completions API
type DeepSeekProvider struct {
	httpClient *http.Client
	baseURL    string
	config     *config.Config
	logger     types.Logger
}

type deepSeekRequest struct {
	Model       string            `json:"model"`
	Messages    []deepSeekMessage `json:"messages"`
	MaxTokens   int               `json:"max_tokens"`
	Temperature float64           `json:"temperature"`
}

type deepSeekMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type deepSeekResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewDeepSeekProvider creates a new DeepSeek provider instance
func NewDeepSeekProvider(cfg *config.Config) *DeepSeekProvider {
	baseURL := cfg.LLM.BaseURL
	if baseURL == "" {
		baseURL = defaultDeepSeekBaseURL
	}

	return &DeepSeekProvider{
		httpClient: &http.Client{Timeout: cfg.LLM.Timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		config:     cfg,
		logger:     logging.GetGlobalLogger(),
	}
}

// Complete sends a single-turn prompt to DeepSeek and returns the text reply
func (dp *DeepSeekProvider) Complete(ctx context.Context, prompt string, opts CompletionOpts) (string, error) {
	startTime := time.Now()

	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = dp.config.LLM.MaxTokens
	}

	payload := deepSeekRequest{
		Model:       dp.config.LLM.Model,
		MaxTokens:   maxTokens,
		Temperature: opts.Temperature,
		Messages: []deepSeekMessage{
			{Role: "user", Content: prompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode DeepSeek request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, dp.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build DeepSeek request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+dp.config.LLM.APIKey)

	resp, err := dp.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call DeepSeek API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read DeepSeek response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("DeepSeek API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed deepSeekResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode DeepSeek response: %w", err)
	}

	if parsed.Error != nil {
		return "", fmt.Errorf("DeepSeek API error: %s", parsed.Error.Message)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty response from DeepSeek")
	}

	text := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("empty response from DeepSeek")
	}

	dp.logger.Debug("DeepSeek completion finished", map[string]interface{}{
		"provider":        "deepseek",
		"prompt_length":   len(prompt),
		"response_length": len(text),
		"processing_time": time.Since(startTime),
	})

	return text, nil
}

// IsHealthy verifies the provider is configured and reachable
func (dp *DeepSeekProvider) IsHealthy(ctx context.Context) error {
	if dp.config.LLM.APIKey == "" {
		return fmt.Errorf("deepseek API key not configured")
	}

	_, err := dp.Complete(ctx, "ping", CompletionOpts{MaxTokens: 10})
	if err != nil {
		return fmt.Errorf("deepseek health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the LLM provider
func (dp *DeepSeekProvider) GetProviderName() string {
	return "deepseek"
}
