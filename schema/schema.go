package schema

import (
	"embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed jsonschemas/*.json
var schemaFS embed.FS

// Compiled response schemas.
var (
	// HealthResponse validates the health endpoint's response body.
	HealthResponse = mustLoad("get_health_response.json")

	// NoopResponse validates the noop endpoint's response body.
	NoopResponse = mustLoad("get_noop_response.json")

	// VersionResponse validates the version endpoint's response body.
	VersionResponse = mustLoad("get_version_response.json")
)

func mustLoad(name string) *gojsonschema.Schema {
	raw, err := schemaFS.ReadFile("jsonschemas/" + name)
	if err != nil {
		panic(err)
	}
	return MustCompile(string(raw))
}

// MustCompile compiles a JSON Schema document, panicking on error. It
// is intended for schemas defined as program constants.
func MustCompile(document string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(document))
	if err != nil {
		panic(err)
	}
	return schema
}
