package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang-apt-news-collector/internal/collector/config"
	"golang-apt-news-collector/internal/collector/dto"
	"golang-apt-news-collector/pkg/logger"

	"golang.org/x/time/rate"
)

// naverNewsRepository is a NewsSearchRepository backed by the Naver news
// search API.
type naverNewsRepository struct {
	client         *http.Client
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

// NewNaverNewsRepository creates a new instance of naverNewsRepository.
func NewNaverNewsRepository(cfg *config.Config, log *logger.Logger) NewsSearchRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.Naver.MaxRequestPerMinute)
	return &naverNewsRepository{
		client: &http.Client{
			Timeout: cfg.Collector.RequestTimeout,
		},
		cfg:            cfg,
		logger:         log,
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

// Configured reports whether both credential values are present.
func (r *naverNewsRepository) Configured() bool {
	return r.cfg.Naver.ClientID != "" && r.cfg.Naver.ClientSecret != ""
}

// Search fetches up to limit news items sorted by recency. Every failure
// degrades to an empty result and is surfaced only via logging.
func (r *naverNewsRepository) Search(ctx context.Context, query string, limit int) *dto.SearchResult {
	empty := &dto.SearchResult{Items: []dto.NaverNewsItem{}}

	if !r.Configured() {
		r.logger.Warn("Naver API credentials are not configured, skipping search", logger.StringField("query", query))
		return empty
	}

	resp, err := r.search(ctx, query, limit)
	if err != nil {
		r.logger.Error("Naver news search failed", logger.ErrorField(err), logger.StringField("query", query))
		return empty
	}

	return &dto.SearchResult{Items: resp.Items, Total: resp.Total}
}

func (r *naverNewsRepository) search(ctx context.Context, query string, limit int) (*dto.NaverSearchResponse, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	apiURL := fmt.Sprintf("%s?query=%s&display=%d&sort=date", r.cfg.Naver.BaseURL, url.QueryEscape(query), limit)
	req, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("X-Naver-Client-Id", r.cfg.Naver.ClientID)
	req.Header.Set("X-Naver-Client-Secret", r.cfg.Naver.ClientSecret)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to Naver API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("received non-OK response from Naver API: %d - %s", resp.StatusCode, string(body))
	}

	var searchResp dto.NaverSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	return &searchResp, nil
}
