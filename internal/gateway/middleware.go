package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/yuvasree15/healthpuls/internal/session"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

type contextKey string

// ClaimsContextKey is the request-context key holding the validated claims.
const ClaimsContextKey contextKey = "session_claims"

// publicPaths are reachable without a bearer token: login, the doctor
// directory, and the operational endpoints.
var publicPaths = []string{
	"/api/v1/auth/login",
	"/api/v1/doctors",
	"/health",
	"/metrics",
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}
	return false
}

// authMiddleware validates the bearer token and attaches its claims to the
// request context.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			s.writeUnauthorized(w, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			s.writeUnauthorized(w, "invalid authorization header format")
			return
		}

		claims, err := s.tokens.Validate(parts[1])
		if err != nil {
			s.logger.WithError(err).Warn("Token validation failed")
			s.writeUnauthorized(w, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// rateLimitMiddleware rejects clients that exceed the per-IP budget.
func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow(clientIP(r)) {
			s.writeError(w, http.StatusTooManyRequests, types.ErrCodeRateLimitExceeded, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// corsMiddleware sets the CORS headers and answers preflight requests.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ClaimsFromContext returns the validated claims attached by authMiddleware.
func ClaimsFromContext(ctx context.Context) (*session.Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*session.Claims)
	return claims, ok
}

func (s *Server) writeUnauthorized(w http.ResponseWriter, message string) {
	s.writeError(w, http.StatusUnauthorized, types.ErrCodeUnauthorized, message)
}

func (s *Server) writeError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]interface{}{
			"code":    code,
			"message": message,
		},
	}); err != nil {
		s.logger.WithError(err).Error("Failed to encode JSON response")
	}
}
