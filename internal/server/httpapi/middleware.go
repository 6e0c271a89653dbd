package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/roadfleet/roadfleet/internal/common"
	"github.com/roadfleet/roadfleet/internal/logging"
	"github.com/roadfleet/roadfleet/internal/server/auth"
	"github.com/roadfleet/roadfleet/internal/server/models"
)

type contextKey string

const claimsKey contextKey = "claims"

// claimsFromContext returns the token claims attached by requireAdmin.
func claimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

// requireAdmin authenticates the bearer token and rejects non-admin
// accounts. Both failures answer 401 so the console drops its session.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			writeError(w, common.ErrorUnauthorized)
			return
		}

		claims, err := auth.ParseToken(tokenString, s.jwtSecret)
		if err != nil {
			writeError(w, err)
			return
		}

		if claims.Role != models.RoleAdmin {
			writeError(w, common.ErrorUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests emits one structured log line per request.
func logRequests(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			logger.Info(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
			)
		})
	}
}
