package health

import (
	"net/http"
	"regexp"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/jonwraymond/svckit/schema"
	"github.com/jonwraymond/svckit/web"
)

// Debug detail codes for the health endpoint.
const (
	// DebugInvalidQuickArgument indicates the request's quick query
	// argument matched neither the truthy nor the falsy forms.
	DebugInvalidQuickArgument = 0x0001

	// DebugInvalidResponseBody indicates the assembled response failed
	// its own schema. This should never happen.
	DebugInvalidResponseBody = 0x0002
)

var (
	trueArgPattern  = regexp.MustCompile(`(?i)^(true|t|y|yes|1)$`)
	falseArgPattern = regexp.MustCompile(`(?i)^(false|f|n|no|0)$`)
)

// HandlerConfig configures the health endpoint handler.
type HandlerConfig struct {
	// DebugDetails enables the X-Debug-Detail header on error
	// responses.
	DebugDetails bool

	// Schema validates the response body before it is written.
	// Default: schema.HealthResponse
	Schema *gojsonschema.Schema

	// Logger receives debug logs.
	// Default: zap.NewNop()
	Logger *zap.Logger
}

// Handler returns the health endpoint handler. Per request it parses
// the quick argument, invokes checker exactly once, rolls the reported
// components up into a report, verifies the report against its schema
// and responds 200 when the service is green and 503 when it is red.
// A malformed quick argument yields a 400 and a failed verification a
// 500, both with an empty JSON body.
func Handler(checker Checker, config ...HandlerConfig) http.HandlerFunc {
	cfg := HandlerConfig{}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Schema == nil {
		cfg.Schema = schema.HealthResponse
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	responder := web.NewResponder(web.Config{
		DebugDetails: cfg.DebugDetails,
		Logger:       cfg.Logger,
	})

	return func(w http.ResponseWriter, r *http.Request) {
		quick, ok := parseQuickArg(r)
		if !ok {
			cfg.Logger.Debug("health: invalid quick argument",
				zap.String("quick", r.URL.Query().Get("quick")))
			responder.WriteBadRequest(w, DebugInvalidQuickArgument)
			return
		}

		components := checker.Check(r.Context(), quick)

		location := web.SelfURL(r)
		report := BuildReport(location, components)

		raw, ok := responder.VerifyBody(report, cfg.Schema)
		if !ok {
			responder.AddDebugDetail(w, DebugInvalidResponseBody)
			responder.WriteError(w, http.StatusInternalServerError)
			return
		}

		status := http.StatusOK
		if report.Status != ColorGreen {
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		w.Header().Set("Location", location)
		w.WriteHeader(status)
		_, _ = w.Write(raw)
	}
}

// parseQuickArg extracts the quick argument from the request query.
// Absent defaults to true. The second result is false when the argument
// is present but matches neither the truthy nor the falsy forms.
func parseQuickArg(r *http.Request) (quick, ok bool) {
	values := r.URL.Query()["quick"]
	if len(values) == 0 {
		return true, true
	}

	// Last value wins when the argument is repeated.
	value := values[len(values)-1]
	switch {
	case trueArgPattern.MatchString(value):
		return true, true
	case falseArgPattern.MatchString(value):
		return false, true
	default:
		return false, false
	}
}
