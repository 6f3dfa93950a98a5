package web

import (
	"encoding/json"
	"io"
	"net/http"
	"regexp"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

var jsonContentTypePattern = regexp.MustCompile(`(?i)^\s*application/json(;\s+charset=utf-?8)?\s*$`)

// ReadJSONBody reads the request's JSON body into a map and validates
// it against schema. A false result means there was no body, the body
// was not JSON UTF-8, or it failed validation; callers treat all of
// these the same way (typically a 400).
func (rp *Responder) ReadJSONBody(r *http.Request, schema *gojsonschema.Schema) (map[string]any, bool) {
	if r.Body == nil {
		return nil, false
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" || !jsonContentTypePattern.MatchString(contentType) {
		return nil, false
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil || len(raw) == 0 {
		return nil, false
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		rp.config.Logger.Debug("web: error parsing JSON request body", zap.Error(err))
		return nil, false
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil || !result.Valid() {
		rp.config.Logger.Debug("web: request body failed schema validation")
		return nil, false
	}

	return body, true
}
