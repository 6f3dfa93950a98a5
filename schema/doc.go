// Package schema holds the JSON Schema documents used to validate the
// library's response bodies, compiled once at startup.
package schema
