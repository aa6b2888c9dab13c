package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"device-rental-backend/config"
	"device-rental-backend/internal/parse"
	"device-rental-backend/internal/store"
)

// testDate puts one lease exactly on the expiring-soon boundary.
const testDate = "2024-09-16"

func testHandler(date string) *Handler {
	return &Handler{
		store: store.Sample(),
		log:   zerolog.Nop(),
		now:   func() time.Time { return parse.MustDate(date) },
	}
}

// setupDashboardRouter registers every handler without middleware, for
// testing handler behavior in isolation.
func setupDashboardRouter(date string) *gin.Engine {
	h := testHandler(date)
	r := gin.New()
	r.GET("/healthz", h.Healthz)
	r.GET("/api/overview", h.GetOverview)
	r.GET("/api/finance", h.GetFinance)
	r.GET("/api/inventory", h.GetInventory)
	r.GET("/api/leases", h.GetLeases)
	r.GET("/api/export", h.ExportWorkbook)
	r.POST("/api/devices/:device_id/status", h.UpdateDeviceStatus)
	return r
}

func doGet(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", target, nil)
	r.ServeHTTP(w, req)
	return w
}

func doPost(r *gin.Engine, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRouterServesDashboardPage(t *testing.T) {
	r := NewRouter(store.Sample(), zerolog.Nop(), config.Default().Server)

	w := doGet(r, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Device Rental Dashboard")
	assert.Contains(t, w.Body.String(), `data-page="leases"`)
}

func TestRouterCachesViewEndpoints(t *testing.T) {
	r := NewRouter(store.Sample(), zerolog.Nop(), config.Default().Server)

	first := doGet(r, "/api/overview")
	second := doGet(r, "/api/overview")

	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestRouterNeverCachesLeases(t *testing.T) {
	r := NewRouter(store.Sample(), zerolog.Nop(), config.Default().Server)

	for range 2 {
		w := doGet(r, "/api/leases")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-Cache"),
			"day counts are relative to the request date and may not be replayed")
	}
}

func TestRouterNeverCachesExport(t *testing.T) {
	r := NewRouter(store.Sample(), zerolog.Nop(), config.Default().Server)

	for range 2 {
		w := doGet(r, "/api/export")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-Cache"))
	}
}

func TestHealthz(t *testing.T) {
	r := setupDashboardRouter(testDate)

	w := doGet(r, "/healthz")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","dataset":"sample-2024","devices":4}`, w.Body.String())
}
