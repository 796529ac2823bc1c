// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Answers CORS preflights and sets CORS headers for the allowed origins.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithMetrics: Records Prometheus request metrics labelled by route pattern.
//
// Provided helpers:
//   - MountPprof: Registers the net/http/pprof handlers on a ServeMux.
package controller
