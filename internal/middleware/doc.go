// Package middleware provides HTTP middleware for the Mergington activities
// API.
//
// The middleware package contains reusable components applied globally around
// the router in cmd/server.
//
// # Available Middleware
//
//   - RequestID: assigns or propagates an X-Request-ID header
//   - Logger: structured request logging via log/slog
//   - Metrics: Prometheus request counter and latency histogram
//   - Recovery: panic recovery returning a 500 Problem Details response
//   - CORS: origin allow-listing and preflight handling
//   - RateLimit: fixed-window request limiting per client IP
//
// # Composition
//
// Chain applies middleware in declaration order:
//
//	wrapped := middleware.Chain(
//	    mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	)
//
// # Context Values
//
// GetRequestID(ctx) returns the unique request identifier set by RequestID.
package middleware
