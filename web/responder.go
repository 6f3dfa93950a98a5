package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

const (
	// DebugDetailHeader is the response header carrying a debug-detail
	// code when Config.DebugDetails is enabled.
	DebugDetailHeader = "X-Debug-Detail"

	// CorrelationIDHeader is the response header carrying the request's
	// correlation id.
	CorrelationIDHeader = "X-Correlation-Id"

	jsonContentType = "application/json; charset=UTF-8"
)

// Config configures a Responder.
type Config struct {
	// DebugDetails enables the X-Debug-Detail header on error
	// responses. The header identifies which internal failure branch
	// produced the response and is meant for debugging, never for
	// clients.
	DebugDetails bool

	// Logger receives debug logs.
	// Default: zap.NewNop()
	Logger *zap.Logger
}

// Responder writes the library's common response shapes.
type Responder struct {
	config Config
}

// NewResponder creates a Responder.
func NewResponder(config ...Config) *Responder {
	cfg := Config{}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Responder{config: cfg}
}

// Config returns the responder configuration.
func (rp *Responder) Config() Config {
	return rp.config
}

// AddDebugDetail sets the debug-detail header to the hex form of code,
// if debug details are enabled. Must be called before the response
// status is written.
func (rp *Responder) AddDebugDetail(w http.ResponseWriter, code int) {
	if rp.config.DebugDetails {
		w.Header().Set(DebugDetailHeader, fmt.Sprintf("0x%04x", code))
	}
}

// WriteError terminates a request with the given status, an empty JSON
// document and a JSON content type.
func (rp *Responder) WriteError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(status)
	_, _ = w.Write([]byte("{}"))
}

// WriteBadRequest terminates a request with a 400, an empty JSON
// document and the given debug-detail code.
func (rp *Responder) WriteBadRequest(w http.ResponseWriter, code int) {
	rp.AddDebugDetail(w, code)
	rp.WriteError(w, http.StatusBadRequest)
}

// VerifyBody marshals body and validates it against schema, returning
// the marshalled bytes. A false result indicates an internal contract
// violation: the response the caller assembled does not match its own
// schema.
func (rp *Responder) VerifyBody(body any, schema *gojsonschema.Schema) ([]byte, bool) {
	raw, err := json.Marshal(body)
	if err != nil {
		rp.config.Logger.Error("web: error marshalling response body", zap.Error(err))
		return nil, false
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		rp.config.Logger.Error("web: error validating response body", zap.Error(err))
		return nil, false
	}
	if !result.Valid() {
		rp.config.Logger.Error("web: response body failed schema validation",
			zap.Any("errors", result.Errors()))
		return nil, false
	}

	return raw, true
}

// WriteAndVerify validates body against schema and, on success, writes
// it with a JSON content type and a 200 status. It returns false
// without writing anything when validation fails.
func (rp *Responder) WriteAndVerify(w http.ResponseWriter, body any, schema *gojsonschema.Schema) bool {
	raw, ok := rp.VerifyBody(body, schema)
	if !ok {
		return false
	}

	w.Header().Set("Content-Type", jsonContentType)
	_, _ = w.Write(raw)
	return true
}
