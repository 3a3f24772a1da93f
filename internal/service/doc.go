// Package service implements the business logic of the activity registry.
//
// The service package owns the capacity and membership rules governing
// signups: an email may appear at most once per activity, and a roster never
// exceeds the activity's fixed capacity. Handlers translate HTTP requests into
// service calls and map the returned errors to status codes.
//
// # Service Pattern
//
//   - Constructor function (NewActivityService) accepts a config struct with
//     the repository dependency
//   - Methods implement business operations with validation before mutation
//   - Errors are returned as sentinel errors defined in errors.go
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interface
//
// The service defines its own ActivityRepository interface, allowing easy
// mocking for unit tests and decoupling from the in-memory implementation.
//
// # Concurrency
//
// Signup and Unregister are read-modify-write sequences. The service holds a
// single coarse mutex across each sequence so the registry invariants hold
// even when the HTTP server handles requests concurrently.
//
// # Error Handling
//
// Services return domain-specific errors defined as package-level variables:
//
//	var (
//	    ErrActivityNotFound = errors.New("activity not found")
//	    ErrActivityFull     = errors.New("activity is full")
//	)
package service
