// Package health implements a structured health-check response protocol
// for HTTP services.
//
// A service's health is described as a set of named components. Each
// component is either checked directly (a single boolean) or by
// aggregating a set of named boolean aspects. Component health rolls up
// into a single "green"/"red" status for the whole service: the service
// is red if any component is red, and a component with aspects is red if
// any aspect is red.
//
// # Core Concepts
//
// An Aspect is a named boolean health signal. A Component owns either a
// direct status or a set of aspects, never both. A Checker is the
// boundary to the service's own probes; it reports the component set for
// a single health-check request.
//
// # Basic Usage
//
//	checker := health.CheckerFunc(func(ctx context.Context, quick bool) []health.Component {
//	    if quick {
//	        return nil // all healthy, no sub-detail
//	    }
//	    return []health.Component{
//	        health.DirectComponent("db", pingDB(ctx) == nil),
//	        health.AggregateComponent("queue",
//	            health.Aspect{Name: "producer", OK: true},
//	            health.Aspect{Name: "consumer", OK: true},
//	        ),
//	    }
//	})
//
//	http.Handle("/v1.0/service/_health", health.Handler(checker))
//
// # The Health Endpoint
//
// Handler implements the full endpoint contract: a "quick" query
// parameter selects between a fast go/no-go check and a full
// per-component probe, the response document carries the rolled-up
// status plus per-component detail and a links.self.href back-reference,
// and the HTTP status is 200 when the service is green and 503 when it
// is red. The response body is verified against its schema before it is
// written.
//
// # Combining Checkers
//
// Use MultiChecker to fan out to several independently owned checkers:
//
//	multi := health.NewMultiChecker()
//	multi.Register("db", dbChecker)
//	multi.Register("cache", cacheChecker)
//	http.Handle("/v1.0/service/_health", health.Handler(multi))
package health
