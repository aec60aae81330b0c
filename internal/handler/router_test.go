//go:build unit

package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"hotel-pricing/internal/handler"
	"hotel-pricing/internal/handler/api"
	"hotel-pricing/internal/pkg/clock"
	"hotel-pricing/internal/pkg/config"
	"hotel-pricing/tests/common/builder"
	"hotel-pricing/tests/common/httptest"
	queriesmock "hotel-pricing/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T, cfg config.Config) (*gin.Engine, *queriesmock.MockPricingQueries) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	q := queriesmock.NewMockPricingQueries(gomock.NewController(t))
	engine := gin.New()
	handler.NewRouter(engine, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), clock.NewRealClock(), api.NewPricingHandler(q))
	return engine, q
}

func TestRouter(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		engine, _ := newRouter(t, config.NewTestConfig())
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/health", nil)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("pricing routes are mounted under the hotel", func(t *testing.T) {
		engine, q := newRouter(t, config.NewTestConfig())
		q.EXPECT().Quote(gomock.Any(), builder.NewQuoteBuilder().BuildParams()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(t, engine, http.MethodPost, "/api/hotels/hotel-1/quotes", builder.NewQuoteBuilder().BuildDTO())
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		engine, _ := newRouter(t, config.NewTestConfig())
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/api/hotels/hotel-1/quotes", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("api is rate limited", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.RateLimit = config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 1}
		engine, _ := newRouter(t, cfg)

		first := httptest.PerformRequest(t, engine, http.MethodPost, "/api/hotels/hotel-1/availability", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, first.Code)

		second := httptest.PerformRequest(t, engine, http.MethodPost, "/api/hotels/hotel-1/availability", map[string]any{})
		assert.Equal(t, http.StatusTooManyRequests, second.Code)

		health := httptest.PerformRequest(t, engine, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, health.Code)
	})
}
