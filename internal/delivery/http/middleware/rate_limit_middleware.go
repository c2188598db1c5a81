package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"budie/config"
	domainerrors "budie/internal/domain/errors"
)

// RateLimitMiddleware builds per-IP rate limiters on top of Echo's
// in-memory limiter store. Auth endpoints get a tighter budget than the
// rest of the API.
type RateLimitMiddleware struct {
	cfg *config.RateLimitConfig
}

// NewRateLimitMiddleware creates a new rate limit middleware.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	return &RateLimitMiddleware{cfg: cfg.RateLimit}
}

// Global limits the overall request rate per client IP.
func (m *RateLimitMiddleware) Global() echo.MiddlewareFunc {
	if m.cfg == nil || !m.cfg.Enabled {
		return passthrough
	}

	return m.limiter(m.cfg.Rate, m.cfg.Burst)
}

// Auth limits login and registration attempts per client IP.
func (m *RateLimitMiddleware) Auth() echo.MiddlewareFunc {
	if m.cfg == nil || !m.cfg.Enabled {
		return passthrough
	}

	return m.limiter(m.cfg.AuthRate, m.cfg.AuthBurst)
}

func (m *RateLimitMiddleware) limiter(ratePerSecond float64, burst int) echo.MiddlewareFunc {
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(ratePerSecond),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return domainerrors.ErrRateLimited
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return domainerrors.ErrRateLimited
		},
	})
}

func passthrough(next echo.HandlerFunc) echo.HandlerFunc {
	return next
}
