// Package handler provides HTTP request handlers for the Mergington
// activities API.
//
// The handler package contains all HTTP endpoint implementations. The
// ActivityHandler encapsulates the registry service dependency and serves the
// listing, signup, and unregister endpoints; Health and Root are plain
// functions with no dependencies.
//
// # Handler Pattern
//
//   - Constructor function (NewActivityHandler) accepts the service interface
//   - Methods handle specific HTTP endpoints using Go 1.22 pattern routing
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteJSON: Raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// Mutating endpoints confirm success with a MessageResponse whose message
// references the student email and activity name.
//
// # Example Usage
//
//	handler := NewActivityHandler(activityService)
//	mux.HandleFunc("GET /activities", handler.List)
//	mux.HandleFunc("POST /activities/{activityName}/signup", handler.Signup)
package handler
