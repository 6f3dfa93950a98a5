package web

import (
	"net/http"

	"github.com/jonwraymond/svckit/schema"
)

// Debug detail codes for the canned response generators. Each response
// type has its own numeric space.
const (
	// DebugNoopInvalidResponseBody indicates the noop response failed
	// its own schema. This should never happen.
	DebugNoopInvalidResponseBody = 0x0001

	// DebugVersionInvalidResponseBody indicates the version response
	// failed its own schema. This should never happen.
	DebugVersionInvalidResponseBody = 0x0001
)

// SelfURL returns the canonical scheme://host/path URL of a request,
// without its query string.
func SelfURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.Path
}

type selfLinks struct {
	Self struct {
		Href string `json:"href"`
	} `json:"self"`
}

func newSelfLinks(href string) selfLinks {
	var links selfLinks
	links.Self.Href = href
	return links
}

// NoopHandler returns a handler for a no-op endpoint: a do-nothing
// request services use to confirm a service is responding.
func NoopHandler(config ...Config) http.HandlerFunc {
	rp := NewResponder(config...)
	return func(w http.ResponseWriter, r *http.Request) {
		location := SelfURL(r)

		body := struct {
			Links selfLinks `json:"links"`
		}{newSelfLinks(location)}

		raw, ok := rp.VerifyBody(body, schema.NoopResponse)
		if !ok {
			rp.AddDebugDetail(w, DebugNoopInvalidResponseBody)
			rp.WriteError(w, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", jsonContentType)
		w.Header().Set("Location", location)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(raw)
	}
}

// VersionHandler returns a handler for a version endpoint reporting the
// given service version.
func VersionHandler(version string, config ...Config) http.HandlerFunc {
	rp := NewResponder(config...)
	return func(w http.ResponseWriter, r *http.Request) {
		location := SelfURL(r)

		body := struct {
			Version string    `json:"version"`
			Links   selfLinks `json:"links"`
		}{version, newSelfLinks(location)}

		raw, ok := rp.VerifyBody(body, schema.VersionResponse)
		if !ok {
			rp.AddDebugDetail(w, DebugVersionInvalidResponseBody)
			rp.WriteError(w, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", jsonContentType)
		w.Header().Set("Location", location)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(raw)
	}
}

// NotFoundHandler returns the handler for unmatched routes: a 404 with
// an empty JSON document, or no body at all for HEAD requests.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", jsonContentType)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("{}"))
	}
}
