package web

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/pkg/logger"
)

const requestIDHeader = "X-Request-ID"

// MiddlewareConfig selects the router-wide middlewares of the inventory API
type MiddlewareConfig struct {
	RequestTimeout   time.Duration
	TracingOperation string
	DisableTracing   bool
	CORS             *cors.Options
}

// DefaultMiddlewareConfig enables everything. A zero timeout disables the deadline.
func DefaultMiddlewareConfig(timeout time.Duration) *MiddlewareConfig {
	return &MiddlewareConfig{
		RequestTimeout:   timeout,
		TracingOperation: "inventory-http-request",
		CORS: &cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type", requestIDHeader},
			ExposedHeaders: []string{requestIDHeader},
		},
	}
}

// chain lists the middlewares outermost first.
func (c *MiddlewareConfig) chain() []mux.MiddlewareFunc {
	chain := []mux.MiddlewareFunc{RecoveryMiddleware(), RequestIDMiddleware()}
	if c.RequestTimeout > 0 {
		chain = append(chain, TimeoutMiddleware(c.RequestTimeout))
	}
	chain = append(chain, LoggingMiddleware)
	if !c.DisableTracing {
		operation := c.TracingOperation
		chain = append(chain, func(next http.Handler) http.Handler {
			return otelhttp.NewHandler(next, operation)
		})
	}
	return append(chain, SecurityHeadersMiddleware())
}

// RegisterMiddlewares installs the configured chain on router
func RegisterMiddlewares(router *mux.Router, config *MiddlewareConfig) {
	logger.Logger.Info().
		Dur("request_timeout", config.RequestTimeout).
		Bool("tracing", !config.DisableTracing).
		Bool("cors", config.CORS != nil).
		Msg("Registering middlewares")

	router.Use(config.chain()...)
}

// RecoveryMiddleware turns a panic into a 500 envelope
func RecoveryMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error(r.Context()).
						Interface("panic", rec).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("Panic recovered")
					RespondStatus(w, http.StatusInternalServerError, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// TimeoutMiddleware cancels handlers that run longer than timeout
func TimeoutMiddleware(timeout time.Duration) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, `{"success":false,"error":"Request timeout"}`)
	}
}

// RequestIDMiddleware reuses the caller's X-Request-ID or assigns a new one
func RequestIDMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), id)))
		})
	}
}

// LoggingMiddleware writes one line per request, at warn for 4xx and error for 5xx.
// The acting user is known only after authentication ran further down the chain.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		holder := &identityHolder{}

		next.ServeHTTP(rec, r.WithContext(withIdentityHolder(r.Context(), holder)))

		ctx := r.Context()
		event := logger.Info(ctx)
		switch {
		case rec.statusCode >= http.StatusInternalServerError:
			event = logger.Error(ctx)
		case rec.statusCode >= http.StatusBadRequest:
			event = logger.Warn(ctx)
		}
		if holder.id != nil {
			event = event.Uint("user_id", holder.id.UserID).Str("role", string(holder.id.Role))
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", clientIP(r)).
			Int("status", rec.statusCode).
			Dur("duration", time.Since(start)).
			Msg("HTTP request completed")
	})
}

// SecurityHeadersMiddleware marks every API response as non-cacheable and non-embeddable
func SecurityHeadersMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Cache-Control", "no-store")
			next.ServeHTTP(w, r)
		})
	}
}

// SetupCORS wraps the whole router so preflight requests never reach mux
func SetupCORS(config *MiddlewareConfig) func(http.Handler) http.Handler {
	if config.CORS == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return cors.New(*config.CORS).Handler
}

// identityHolder lets the authenticator report the resolved identity back
// to LoggingMiddleware, which sits outside of it.
type identityHolder struct {
	id *access.Identity
}
