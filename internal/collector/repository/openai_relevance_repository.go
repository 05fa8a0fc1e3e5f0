package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang-apt-news-collector/internal/collector/config"
	"golang-apt-news-collector/internal/collector/dto"
	"golang-apt-news-collector/internal/entity"
	"golang-apt-news-collector/pkg/logger"
	"golang-apt-news-collector/pkg/ratelimit"

	"golang.org/x/time/rate"
)

// openaiRelevanceRepository is a RelevanceRepository backed by the OpenAI
// chat completions API.
type openaiRelevanceRepository struct {
	client         *http.Client
	cfg            *config.Config
	logger         *logger.Logger
	tokenLimiter   *ratelimit.TokenLimiter
	requestLimiter *rate.Limiter
}

// NewOpenAIRelevanceRepository creates a new instance of openaiRelevanceRepository.
func NewOpenAIRelevanceRepository(cfg *config.Config, log *logger.Logger) RelevanceRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.OpenAI.MaxRequestPerMinute)

	return &openaiRelevanceRepository{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg:            cfg,
		logger:         log,
		tokenLimiter:   ratelimit.NewTokenLimiter(cfg.OpenAI.MaxTokenPerMinute),
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

func (r *openaiRelevanceRepository) Mode() string {
	return entity.RelevanceFilterLLM
}

// Judge asks the model to rate relevance of one news item to the entity.
func (r *openaiRelevanceRepository) Judge(ctx context.Context, entityName, title, description string) (*dto.RelevanceVerdict, error) {
	prompt := BuildRelevancePrompt(entityName, title, description)

	resp, err := r.sendRequest(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return parseVerdictJSON(chatContent(resp))
}

func chatContent(resp *dto.OpenAPIRes) string {
	if len(resp.Choices) == 0 {
		return ""
	}
	return resp.Choices[0].Message.Content
}

// parseVerdictJSON decodes a {score, reason} document, tolerating markdown
// code fences around it. A score outside [0,1] is rejected.
func parseVerdictJSON(raw string) (*dto.RelevanceVerdict, error) {
	if raw == "" {
		return nil, fmt.Errorf("no content found in model response")
	}
	raw = strings.Trim(raw, "`json\n`")

	var verdict dto.RelevanceVerdict
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		return nil, fmt.Errorf("failed to unmarshal verdict from model response: %w", err)
	}
	if !verdict.Valid() {
		return nil, fmt.Errorf("verdict score %f is outside [0,1]", verdict.Score)
	}
	return &verdict, nil
}

func (r *openaiRelevanceRepository) sendRequest(ctx context.Context, prompt string) (*dto.OpenAPIRes, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	payload := dto.OpenAPIReq{
		Model: r.cfg.OpenAI.Model,
		Messages: []dto.Message{
			{
				Role:    "user",
				Content: prompt,
			},
		},
		ResponseFormat: &dto.ResponseFormat{Type: "json_object"},
		MaxTokens:      150,
		Temperature:    0.1,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", r.cfg.OpenAI.BaseURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.cfg.OpenAI.APIKey))

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to OpenAI API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("received non-OK response from OpenAI API: %d - %s", resp.StatusCode, string(body))
	}

	var openaiResp dto.OpenAPIRes
	if err := json.NewDecoder(resp.Body).Decode(&openaiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	if openaiResp.Usage.TotalTokens > r.cfg.OpenAI.MaxTokenPerMinute/2 {
		r.logger.Warn("Token usage exceeded 50% of the limit", logger.IntField("remaining", r.tokenLimiter.GetRemaining()))
	}

	if err := r.tokenLimiter.Wait(ctx, openaiResp.Usage.TotalTokens); err != nil {
		return nil, fmt.Errorf("failed to wait for token limit: %w", err)
	}

	return &openaiResp, nil
}
