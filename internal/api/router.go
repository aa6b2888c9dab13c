package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"device-rental-backend/config"
	"device-rental-backend/internal/mw"
	"device-rental-backend/internal/store"
	"device-rental-backend/internal/webui"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, log zerolog.Logger, cfg config.ServerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), mw.RequestLogger(log, cfg.RequestIPHeader))

	handler := NewHandler(s, log)

	rateLimiter := mw.NewIPRateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	cacheStore := cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	caching := mw.Cache(cacheStore, cfg.CacheTTL)

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(webui.Page))
	})
	r.GET("/healthz", handler.Healthz)

	// API group
	api := r.Group("/api")
	api.Use(mw.RateLimit(rateLimiter, cfg.RequestIPHeader))
	{
		// GET /api/overview
		api.GET("/overview", caching, handler.GetOverview)

		// GET /api/finance
		api.GET("/finance", caching, handler.GetFinance)

		// GET /api/inventory?category=...
		api.GET("/inventory", caching, handler.GetInventory)

		// GET /api/leases, uncached: day counts are relative to the
		// request date, and a response cached before midnight would
		// keep serving yesterday's numbers for the whole TTL.
		api.GET("/leases", handler.GetLeases)

		// GET /api/export, uncached for the same reason: the
		// workbook embeds the request date.
		api.GET("/export", handler.ExportWorkbook)

		// POST /api/devices/{device_id}/status
		api.POST("/devices/:device_id/status", handler.UpdateDeviceStatus)
	}

	return r
}
