package httputil

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/lox/seatemp/internal/metrics"
)

const RequestIDHeader = "X-Request-ID"

type ctxKey struct{}

// RequestID returns the request ID stored by Middleware, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Logger returns a log entry tagged with the request ID.
func Logger(ctx context.Context, base logrus.FieldLogger) logrus.FieldLogger {
	if id := RequestID(ctx); id != "" {
		return base.WithField("request_id", id)
	}
	return base
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware assigns a request ID (reusing an inbound X-Request-ID), logs one
// access line per request and records request metrics. route maps a request
// to a low-cardinality metrics label.
func Middleware(next http.Handler, logger logrus.FieldLogger, clock clockwork.Clock, route func(*http.Request) string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := clock.Now()

		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		r = r.WithContext(context.WithValue(r.Context(), ctxKey{}, id))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		elapsed := clock.Since(start)
		path := route(r)
		metrics.HTTPRequestsTotal.WithLabelValues(path, strconv.Itoa(rec.status)).Inc()
		metrics.HTTPRequestLatency.WithLabelValues(path).Observe(elapsed.Seconds())

		logger.WithFields(logrus.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rec.status,
			"duration":   elapsed.Round(time.Microsecond).String(),
		}).Info("request")
	})
}
