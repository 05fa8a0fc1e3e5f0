package repository

import (
	"context"

	"golang-apt-news-collector/internal/entity"
)

// MarketStatsRepository aggregates transaction history into the figures the
// dashboard charts are built from.
type MarketStatsRepository interface {
	// JeonseRatios returns the jeonse-to-sale price ratio per region.
	JeonseRatios(ctx context.Context) ([]entity.JeonseRatioRow, error)
	// PriceTrends returns monthly average prices per apartment complex over
	// the trailing months window.
	PriceTrends(ctx context.Context, months int) ([]entity.PriceTrendRow, error)
	// TransactionVolume returns monthly listing counts per region over the
	// trailing months window.
	TransactionVolume(ctx context.Context, months int) ([]entity.TransactionVolumeRow, error)
}

// NewsDocumentRepository reads the collection documents the collector
// service persists.
type NewsDocumentRepository interface {
	// ApartmentNews returns the latest apartment news document. The error is
	// non-nil when no collection has run yet.
	ApartmentNews(ctx context.Context) (*entity.CollectionRun, error)
	// RegionNews returns the latest region headline document.
	RegionNews(ctx context.Context) (*entity.CollectionRun, error)
}
