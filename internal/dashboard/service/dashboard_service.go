package service

import (
	"context"

	"golang-apt-news-collector/internal/dashboard/repository"
	"golang-apt-news-collector/internal/entity"
	"golang-apt-news-collector/pkg/logger"
)

// DashboardService exposes the read models the dashboard endpoints serve.
type DashboardService interface {
	ApartmentNews(ctx context.Context) (*entity.CollectionRun, error)
	RegionNews(ctx context.Context) (*entity.CollectionRun, error)
	JeonseRatios(ctx context.Context) ([]entity.JeonseRatioRow, error)
	PriceTrends(ctx context.Context, months int) ([]entity.PriceTrendRow, error)
	TransactionVolume(ctx context.Context, months int) ([]entity.TransactionVolumeRow, error)
}

type dashboardService struct {
	newsRepo  repository.NewsDocumentRepository
	statsRepo repository.MarketStatsRepository
	logger    *logger.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(newsRepo repository.NewsDocumentRepository, statsRepo repository.MarketStatsRepository, log *logger.Logger) DashboardService {
	return &dashboardService{
		newsRepo:  newsRepo,
		statsRepo: statsRepo,
		logger:    log,
	}
}

func (s *dashboardService) ApartmentNews(ctx context.Context) (*entity.CollectionRun, error) {
	return s.newsRepo.ApartmentNews(ctx)
}

func (s *dashboardService) RegionNews(ctx context.Context) (*entity.CollectionRun, error) {
	return s.newsRepo.RegionNews(ctx)
}

func (s *dashboardService) JeonseRatios(ctx context.Context) ([]entity.JeonseRatioRow, error) {
	rows, err := s.statsRepo.JeonseRatios(ctx)
	if err != nil {
		s.logger.Error("Failed to load jeonse ratios", logger.ErrorField(err))
		return nil, err
	}
	return rows, nil
}

func (s *dashboardService) PriceTrends(ctx context.Context, months int) ([]entity.PriceTrendRow, error) {
	rows, err := s.statsRepo.PriceTrends(ctx, months)
	if err != nil {
		s.logger.Error("Failed to load price trends", logger.ErrorField(err))
		return nil, err
	}
	return rows, nil
}

func (s *dashboardService) TransactionVolume(ctx context.Context, months int) ([]entity.TransactionVolumeRow, error) {
	rows, err := s.statsRepo.TransactionVolume(ctx, months)
	if err != nil {
		s.logger.Error("Failed to load transaction volume", logger.ErrorField(err))
		return nil, err
	}
	return rows, nil
}
