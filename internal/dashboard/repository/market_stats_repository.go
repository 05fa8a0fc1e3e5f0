package repository

import (
	"context"
	"fmt"
	"time"

	"golang-apt-news-collector/internal/entity"
	"golang-apt-news-collector/pkg/logger"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

const (
	jeonseRatioCacheKey       = "market:jeonse_ratio"
	priceTrendCacheKeyFmt     = "market:price_trend:%d"
	transactionVolumeCacheFmt = "market:transaction_volume:%d"
)

type marketStatsRepository struct {
	db     *gorm.DB
	cache  *gocache.Cache
	logger *logger.Logger
}

// NewMarketStatsRepository creates a new MarketStatsRepository backed by
// Postgres, with an in-process TTL cache in front of the aggregate queries.
func NewMarketStatsRepository(db *gorm.DB, ttl time.Duration, log *logger.Logger) MarketStatsRepository {
	return &marketStatsRepository{
		db:     db,
		cache:  gocache.New(ttl, 2*ttl),
		logger: log,
	}
}

func (r *marketStatsRepository) JeonseRatios(ctx context.Context) ([]entity.JeonseRatioRow, error) {
	if cached, ok := r.cache.Get(jeonseRatioCacheKey); ok {
		return cached.([]entity.JeonseRatioRow), nil
	}

	var rows []entity.JeonseRatioRow
	query := `
		SELECT m.region,
		       m.avg_sale_price,
		       j.avg_jeonse_price,
		       ROUND((j.avg_jeonse_price / NULLIF(m.avg_sale_price, 0) * 100)::numeric, 1) AS jeonse_ratio
		FROM (
			SELECT region, AVG(price) AS avg_sale_price
			FROM maemae_history
			GROUP BY region
		) m
		JOIN (
			SELECT region, AVG(price) AS avg_jeonse_price
			FROM jeonsae_history
			GROUP BY region
		) j ON m.region = j.region
		ORDER BY jeonse_ratio DESC`
	if err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query jeonse ratios: %w", err)
	}

	r.cache.Set(jeonseRatioCacheKey, rows, gocache.DefaultExpiration)
	return rows, nil
}

func (r *marketStatsRepository) PriceTrends(ctx context.Context, months int) ([]entity.PriceTrendRow, error) {
	cacheKey := fmt.Sprintf(priceTrendCacheKeyFmt, months)
	if cached, ok := r.cache.Get(cacheKey); ok {
		return cached.([]entity.PriceTrendRow), nil
	}

	var rows []entity.PriceTrendRow
	query := `
		SELECT apt_name AS name,
		       to_char(deal_date, 'YYYY-MM') AS month,
		       'sale' AS trade_type,
		       AVG(price) AS avg_price,
		       COUNT(*) AS sample_count
		FROM maemae_history
		WHERE deal_date >= ?
		GROUP BY apt_name, to_char(deal_date, 'YYYY-MM')
		UNION ALL
		SELECT apt_name AS name,
		       to_char(deal_date, 'YYYY-MM') AS month,
		       'jeonse' AS trade_type,
		       AVG(price) AS avg_price,
		       COUNT(*) AS sample_count
		FROM jeonsae_history
		WHERE deal_date >= ?
		GROUP BY apt_name, to_char(deal_date, 'YYYY-MM')
		ORDER BY month, name`
	since := monthsAgo(months)
	if err := r.db.WithContext(ctx).Raw(query, since, since).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query price trends: %w", err)
	}

	r.cache.Set(cacheKey, rows, gocache.DefaultExpiration)
	return rows, nil
}

func (r *marketStatsRepository) TransactionVolume(ctx context.Context, months int) ([]entity.TransactionVolumeRow, error) {
	cacheKey := fmt.Sprintf(transactionVolumeCacheFmt, months)
	if cached, ok := r.cache.Get(cacheKey); ok {
		return cached.([]entity.TransactionVolumeRow), nil
	}

	var rows []entity.TransactionVolumeRow
	query := `
		SELECT region,
		       to_char(deal_date, 'YYYY-MM') AS month,
		       'sale' AS trade_type,
		       COUNT(*) AS transactions
		FROM maemae_history
		WHERE deal_date >= ?
		GROUP BY region, to_char(deal_date, 'YYYY-MM')
		UNION ALL
		SELECT region,
		       to_char(deal_date, 'YYYY-MM') AS month,
		       'jeonse' AS trade_type,
		       COUNT(*) AS transactions
		FROM jeonsae_history
		WHERE deal_date >= ?
		GROUP BY region, to_char(deal_date, 'YYYY-MM')
		ORDER BY month, region`
	since := monthsAgo(months)
	if err := r.db.WithContext(ctx).Raw(query, since, since).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query transaction volume: %w", err)
	}

	r.cache.Set(cacheKey, rows, gocache.DefaultExpiration)
	return rows, nil
}

func monthsAgo(months int) time.Time {
	return time.Now().AddDate(0, -months, 0)
}
