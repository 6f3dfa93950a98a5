package web

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "github.com/jonwraymond/svckit/web"

// Middleware wraps a handler with the package's cross-cutting request
// behavior: a correlation id on every response, Server header
// scrubbing, debug-level request/response logging, and an OpenTelemetry
// span plus request counter.
func Middleware(config ...Config) func(http.Handler) http.Handler {
	cfg := Config{}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	tracer := otel.Tracer(instrumentationName)
	requests, _ := otel.Meter(instrumentationName).Int64Counter(
		"http.server.requests",
		metric.WithDescription("Number of HTTP requests handled."),
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			correlationID := uuid.NewString()
			w.Header().Set(CorrelationIDHeader, correlationID)

			ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			cfg.Logger.Debug("received request",
				zap.String("correlation_id", correlationID),
				zap.String("method", r.Method),
				zap.String("url", r.URL.String()),
				zap.Any("headers", r.Header),
			)

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r.WithContext(ctx))

			span.SetAttributes(attribute.Int("http.response.status_code", recorder.status))
			if requests != nil {
				requests.Add(ctx, 1, metric.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.Int("http.response.status_code", recorder.status),
				))
			}

			cfg.Logger.Debug("sending response",
				zap.String("correlation_id", correlationID),
				zap.Int("status", recorder.status),
				zap.Duration("duration", time.Since(start)),
				zap.Any("headers", w.Header()),
			)
		})
	}
}

// statusRecorder captures the response status and removes the Server
// header before it is committed.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (sr *statusRecorder) WriteHeader(status int) {
	if sr.wroteHeader {
		return
	}
	sr.wroteHeader = true
	sr.status = status
	sr.Header().Del("Server")
	sr.ResponseWriter.WriteHeader(status)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.wroteHeader {
		sr.WriteHeader(http.StatusOK)
	}
	return sr.ResponseWriter.Write(b)
}
