package config

import (
	"time"

	pkgconfig "golang-apt-news-collector/pkg/config"
)

// Dashboard holds dashboard-specific settings.
type Dashboard struct {
	ApartmentNewsPath string        `mapstructure:"apartment_news_path"`
	RegionNewsPath    string        `mapstructure:"region_news_path"`
	CacheTTL          time.Duration `mapstructure:"cache_ttl"`
	TrendMonths       int           `mapstructure:"trend_months"`
}

// Config holds all configuration for the dashboard service.
type Config struct {
	App       pkgconfig.App      `mapstructure:"app"`
	Logger    pkgconfig.Logger   `mapstructure:"logger"`
	Database  pkgconfig.Database `mapstructure:"database"`
	API       pkgconfig.API      `mapstructure:"api"`
	Dashboard Dashboard          `mapstructure:"dashboard"`
}

// envBoundKeys are the secrets never shipped in the config file.
var envBoundKeys = []string{
	"database.user",
	"database.password",
}

// Load reads configuration from the given file path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := pkgconfig.Load(path, &cfg, envBoundKeys...); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Dashboard.ApartmentNewsPath == "" {
		c.Dashboard.ApartmentNewsPath = "data/apartment_news.json"
	}
	if c.Dashboard.RegionNewsPath == "" {
		c.Dashboard.RegionNewsPath = "data/news_headlines.json"
	}
	if c.Dashboard.CacheTTL <= 0 {
		c.Dashboard.CacheTTL = 10 * time.Minute
	}
	if c.Dashboard.TrendMonths <= 0 {
		c.Dashboard.TrendMonths = 12
	}
}
