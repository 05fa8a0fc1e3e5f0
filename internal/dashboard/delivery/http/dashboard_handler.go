package http

import (
	"errors"
	"net/http"
	"strconv"

	"golang-apt-news-collector/internal/dashboard/repository"
	"golang-apt-news-collector/internal/dashboard/service"
	"golang-apt-news-collector/pkg/logger"

	"github.com/labstack/echo/v4"
)

// DashboardHandler handles HTTP requests for the dashboard API.
type DashboardHandler struct {
	dashboardService service.DashboardService
	defaultMonths    int
	logger           *logger.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService, defaultMonths int, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		defaultMonths:    defaultMonths,
		logger:           log,
	}
}

// RegisterRoutes registers the dashboard routes to the Echo group.
func (h *DashboardHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/news/apartments", h.GetApartmentNews)
	g.GET("/news/regions", h.GetRegionNews)
	g.GET("/market/jeonse-ratio", h.GetJeonseRatios)
	g.GET("/market/price-trends", h.GetPriceTrends)
	g.GET("/market/transaction-volume", h.GetTransactionVolume)
}

// GetApartmentNews serves the latest apartment news document.
func (h *DashboardHandler) GetApartmentNews(c echo.Context) error {
	run, err := h.dashboardService.ApartmentNews(c.Request().Context())
	if err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "No apartment news collected yet"})
		}
		h.logger.Error("Failed to load apartment news", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to load apartment news"})
	}
	return c.JSON(http.StatusOK, run)
}

// GetRegionNews serves the latest region headline document.
func (h *DashboardHandler) GetRegionNews(c echo.Context) error {
	run, err := h.dashboardService.RegionNews(c.Request().Context())
	if err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "No region news collected yet"})
		}
		h.logger.Error("Failed to load region news", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to load region news"})
	}
	return c.JSON(http.StatusOK, run)
}

// GetJeonseRatios serves per-region jeonse-to-sale ratios.
func (h *DashboardHandler) GetJeonseRatios(c echo.Context) error {
	rows, err := h.dashboardService.JeonseRatios(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to load jeonse ratios"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GetPriceTrends serves monthly average prices per complex.
func (h *DashboardHandler) GetPriceTrends(c echo.Context) error {
	rows, err := h.dashboardService.PriceTrends(c.Request().Context(), h.months(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to load price trends"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GetTransactionVolume serves monthly listing counts per region.
func (h *DashboardHandler) GetTransactionVolume(c echo.Context) error {
	rows, err := h.dashboardService.TransactionVolume(c.Request().Context(), h.months(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to load transaction volume"})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *DashboardHandler) months(c echo.Context) int {
	raw := c.QueryParam("months")
	if raw == "" {
		return h.defaultMonths
	}
	months, err := strconv.Atoi(raw)
	if err != nil || months <= 0 {
		return h.defaultMonths
	}
	return months
}
