// Package web provides request-handler glue for JSON HTTP services:
// basic-auth header parsing, schema-validated request and response
// bodies, a debug-detail diagnostic header, canned noop/version/404
// responses, and request-logging middleware.
//
// The package layers on net/http and delegates the heavy lifting
// (serving, schema validation, logging) to its collaborators. Error
// responses follow one pattern throughout: an empty JSON document, a
// JSON content type, the appropriate status code, and optionally a
// hexadecimal X-Debug-Detail header identifying the failure branch.
// The debug header is never part of the contractual response; it is
// emitted only when Config.DebugDetails is set.
package web
