package config

import (
	"time"

	"golang-apt-news-collector/internal/entity"
	"golang-apt-news-collector/pkg/config"
)

// Naver holds the credentials and limits for the Naver news search API.
// ClientID and ClientSecret are normally supplied via the NAVER_CLIENT_ID and
// NAVER_CLIENT_SECRET environment variables.
type Naver struct {
	ClientID            string `mapstructure:"client_id"`
	ClientSecret        string `mapstructure:"client_secret"`
	BaseURL             string `mapstructure:"base_url"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// OpenAI holds the configuration for the OpenAI relevance judge.
type OpenAI struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	BaseURL             string `mapstructure:"base_url"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int    `mapstructure:"max_token_per_minute"`
}

// Gemini holds the configuration for the Gemini relevance judge.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	BaseURL             string `mapstructure:"base_url"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int    `mapstructure:"max_token_per_minute"`
}

// AI selects the relevance judge provider: "openai", "gemini" or "keyword".
type AI struct {
	Provider string `mapstructure:"provider"`
}

// Telegram holds configuration for the optional run notifier.
type Telegram struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Collector holds the batch collection settings.
type Collector struct {
	NewsPerEntity       int             `mapstructure:"news_per_entity"`
	MinRelevanceScore   float64         `mapstructure:"min_relevance_score"`
	ApartmentOutputPath string          `mapstructure:"apartment_output_path"`
	RegionOutputPath    string          `mapstructure:"region_output_path"`
	RequestTimeout      time.Duration   `mapstructure:"request_timeout"`
	FetchFullContent    bool            `mapstructure:"fetch_full_content"`
	CronSchedule        string          `mapstructure:"cron_schedule"`
	Apartments          []entity.Target `mapstructure:"apartments"`
	Regions             []string        `mapstructure:"regions"`
}

// Config holds the full configuration for the collector service.
type Config struct {
	App       config.App    `mapstructure:"app"`
	Logger    config.Logger `mapstructure:"logger"`
	Collector Collector     `mapstructure:"collector"`
	Naver     Naver         `mapstructure:"naver"`
	OpenAI    OpenAI        `mapstructure:"openai"`
	Gemini    Gemini        `mapstructure:"gemini"`
	AI        AI            `mapstructure:"ai"`
	Telegram  Telegram      `mapstructure:"telegram"`
}

// envBoundKeys are the secrets never shipped in the config file; they are
// bound explicitly so NAVER_CLIENT_ID and friends resolve even when the file
// omits the keys.
var envBoundKeys = []string{
	"naver.client_id",
	"naver.client_secret",
	"openai.api_key",
	"gemini.api_key",
	"telegram.bot_token",
}

// Load loads the collector configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg, envBoundKeys...); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Collector.NewsPerEntity == 0 {
		c.Collector.NewsPerEntity = 10
	}
	if c.Collector.MinRelevanceScore == 0 {
		c.Collector.MinRelevanceScore = 0.6
	}
	if c.Collector.ApartmentOutputPath == "" {
		c.Collector.ApartmentOutputPath = "data/apartment_news.json"
	}
	if c.Collector.RegionOutputPath == "" {
		c.Collector.RegionOutputPath = "data/news_headlines.json"
	}
	if c.Collector.RequestTimeout == 0 {
		c.Collector.RequestTimeout = 15 * time.Second
	}
	if c.Naver.BaseURL == "" {
		c.Naver.BaseURL = "https://openapi.naver.com/v1/search/news.json"
	}
	if c.Naver.MaxRequestPerMinute == 0 {
		c.Naver.MaxRequestPerMinute = 60
	}
	if c.OpenAI.BaseURL == "" {
		c.OpenAI.BaseURL = "https://api.openai.com/v1/chat/completions"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.OpenAI.MaxRequestPerMinute == 0 {
		c.OpenAI.MaxRequestPerMinute = 60
	}
	if c.OpenAI.MaxTokenPerMinute == 0 {
		c.OpenAI.MaxTokenPerMinute = 60000
	}
	if c.Gemini.BaseURL == "" {
		c.Gemini.BaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.0-flash"
	}
	if c.Gemini.MaxRequestPerMinute == 0 {
		c.Gemini.MaxRequestPerMinute = 15
	}
	if c.Gemini.MaxTokenPerMinute == 0 {
		c.Gemini.MaxTokenPerMinute = 100000
	}
}
