package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"food-ordering/pkg/utils"

	"go.uber.org/zap"
)

// Limiter decides whether a client key is still within quota.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
	Window() time.Duration
}

// RateLimit rejects clients over quota with 429. A nil limiter disables it.
func RateLimit(limiter Limiter, scope string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r)
			if !limiter.Allow(r.Context(), scope+":"+ip) {
				logger.Warn("Rate limit exceeded",
					zap.String("scope", scope),
					zap.String("ip", ip))
				w.Header().Set("Retry-After", strconv.Itoa(int(limiter.Window().Seconds())))
				utils.ResponseTooManyRequests(w, "Too many requests, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP returns the first forwarded address, or the peer address.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
