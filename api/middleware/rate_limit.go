package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/yourarttoy/arttoy-backend/api/responses"
	"github.com/yourarttoy/arttoy-backend/pkg/config"
	pkgerrors "github.com/yourarttoy/arttoy-backend/pkg/errors"
	"github.com/yourarttoy/arttoy-backend/pkg/logger"
)

// WindowLimiter counts hits per scope inside a fixed window.
type WindowLimiter interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// RateLimit applies a global fixed-window cap per client IP. If the counter
// backend is unavailable the request goes through; throttling is protection,
// not a dependency.
func RateLimit(limiter WindowLimiter, cfg config.RateLimitConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Disabled || limiter == nil {
				next.ServeHTTP(w, r)
				return
			}

			scope := "ip:" + clientIP(r)
			allowed, count, err := limiter.FixedWindowAllow(r.Context(), scope, int64(cfg.IPLimit), cfg.Window)
			if err != nil {
				if logg != nil {
					logg.Warn(logg.WithField(r.Context(), "scope", scope), "rate_limit.backend_unavailable")
				}
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				ctx := r.Context()
				if logg != nil {
					ctx = logg.WithFields(ctx, map[string]any{"scope": scope, "count": count})
				}
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeRateLimit, "Too many requests, please try again later"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.IndexByte(fwd, ','); idx > 0 {
			return strings.TrimSpace(fwd[:idx])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
