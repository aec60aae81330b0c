package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"hotel-pricing/internal/handler/httperr"
	"hotel-pricing/internal/pkg/clock"
	"hotel-pricing/internal/pkg/config"
	"hotel-pricing/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errs.New("rate limit exceeded")

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiters holds one token bucket per client IP. Buckets idle for
// idleTTL are swept on access; a non-positive idleTTL keeps them forever.
type clientLimiters struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
}

func (s *clientLimiters) allow(ip string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.idleTTL > 0 && now.Sub(s.lastSweep) >= s.idleTTL {
		for key, client := range s.clients {
			if now.Sub(client.lastSeen) >= s.idleTTL {
				delete(s.clients, key)
			}
		}
		s.lastSweep = now
	}

	client, ok := s.clients[ip]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.clients[ip] = client
	}
	client.lastSeen = now
	return client.limiter.AllowN(now, 1)
}

func (s *clientLimiters) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// NewRateLimiter limits requests per client IP. A disabled config yields a
// pass-through handler.
func NewRateLimiter(cfg config.RateLimitConfig, logger *slog.Logger, clk clock.Clock) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}
	store := &clientLimiters{
		clients:   make(map[string]*clientLimiter),
		limit:     rate.Limit(cfg.RPS),
		burst:     cfg.Burst,
		idleTTL:   cfg.IdleTTL,
		lastSweep: clk.Now(),
	}
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !store.allow(ip, clk.Now()) {
			logger.WarnContext(c.Request.Context(), "rate limit exceeded",
				slog.String("client_ip", ip),
				slog.String("request_id", GetRequestID(c)),
				slog.Int("tracked_clients", store.size()),
			)
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
