package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/yuvasree15/healthpuls/internal/chat"
	"github.com/yuvasree15/healthpuls/internal/commerce"
	"github.com/yuvasree15/healthpuls/internal/directory"
	"github.com/yuvasree15/healthpuls/internal/facilities"
	"github.com/yuvasree15/healthpuls/internal/labs"
	"github.com/yuvasree15/healthpuls/internal/notification"
	"github.com/yuvasree15/healthpuls/internal/records"
	"github.com/yuvasree15/healthpuls/internal/scheduling"
	"github.com/yuvasree15/healthpuls/internal/session"
	"github.com/yuvasree15/healthpuls/pkg/config"
	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/monitoring"
)

// Services bundles the domain services behind the gateway.
type Services struct {
	Session      *session.Service
	Notification *notification.Service
	Chat         *chat.Service
	Scheduling   *scheduling.Service
	Commerce     *commerce.Service
	Records      *records.Service
	Labs         *labs.Service
	Directory    *directory.Client
	Facilities   *facilities.Service
}

// Server is the portal's HTTP front. It owns the router, the auth and rate
// limit middleware, and the underlying http.Server lifecycle.
type Server struct {
	cfg        *config.Config
	logger     *logger.Logger
	metrics    *monitoring.MetricsCollector
	tokens     *session.TokenIssuer
	limiter    *IPRateLimiter
	httpServer *http.Server
}

// NewServer builds the router and wires every domain handler under /api/v1.
func NewServer(cfg *config.Config, services *Services, log *logger.Logger, metrics *monitoring.MetricsCollector) *Server {
	s := &Server{
		cfg:     cfg,
		logger:  log,
		metrics: metrics,
		tokens:  services.Session.Tokens(),
	}

	if cfg.RateLimit.Enabled {
		s.limiter = NewIPRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSec), cfg.RateLimit.BurstSize)
	}

	router := mux.NewRouter()

	router.HandleFunc(cfg.Monitoring.HealthPath, s.healthCheck).Methods("GET")
	if cfg.Monitoring.Enabled {
		router.Handle(cfg.Monitoring.MetricsPath, metrics.Handler()).Methods("GET")
	}

	api := router.PathPrefix("/api/v1").Subrouter()
	session.NewHandlers(services.Session, log).RegisterRoutes(api)
	notification.NewHandlers(services.Notification, log).RegisterRoutes(api)
	chat.NewHandlers(services.Chat, services.Session, log).RegisterRoutes(api)
	scheduling.NewHandlers(services.Scheduling, log).RegisterRoutes(api)
	commerce.NewHandlers(services.Commerce, log).RegisterRoutes(api)
	records.NewHandlers(services.Records, log).RegisterRoutes(api)
	labs.NewHandlers(services.Labs, log).RegisterRoutes(api)
	directory.NewHandlers(services.Directory, log).RegisterRoutes(api)
	facilities.NewHandlers(services.Facilities, log).RegisterRoutes(api)

	monitor := monitoring.NewMiddleware(metrics, log)

	var handler http.Handler = router
	handler = s.authMiddleware(handler)
	handler = s.rateLimitMiddleware(handler)
	handler = s.corsMiddleware(handler)
	handler = monitor.HTTP(handler)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	return s
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	s.logger.WithComponent("gateway").WithField("addr", s.httpServer.Addr).Info("Starting portal server")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down portal server")
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the composed handler chain, used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "healthy",
		"service": "healthpuls-portal",
		"time":    time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		s.logger.WithError(err).Error("Failed to encode health response")
	}
}
