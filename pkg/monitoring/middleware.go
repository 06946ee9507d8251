package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/yuvasree15/healthpuls/pkg/logger"
)

// Middleware records metrics and logs every HTTP request.
type Middleware struct {
	metrics *MetricsCollector
	logger  *logger.Logger
}

// NewMiddleware creates a new monitoring middleware
func NewMiddleware(metrics *MetricsCollector, log *logger.Logger) *Middleware {
	return &Middleware{
		metrics: metrics,
		logger:  log,
	}
}

// HTTP wraps a handler with request metrics and logging.
func (m *Middleware) HTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &statusResponseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapper, r)

		duration := time.Since(start)
		m.metrics.RecordHTTPRequest(r.Method, r.URL.Path, strconv.Itoa(wrapper.statusCode), duration)
		m.logger.HTTPRequest(r.Method, r.URL.Path, r.RemoteAddr, wrapper.statusCode, duration.Milliseconds())
	})
}

// statusResponseWriter wraps http.ResponseWriter to capture the status code
type statusResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}
