// Package model defines domain entities and error types for the Mergington
// activities API.
//
// The model package contains the Activity entity shared across all layers and
// the RFC 9457 Problem Details error representation used by the HTTP boundary.
//
// # Domain Entities
//
// Activity is the only domain entity: a named extracurricular offering with a
// free-text description and schedule, a fixed capacity, and an ordered roster
// of participant emails. The registry (internal/repository) keys activities by
// name, so Activity itself carries no name field.
//
// # JSON Serialization
//
// Activity serializes with snake_case json tags matching the public API:
//
//	type Activity struct {
//	    Description     string   `json:"description"`
//	    Schedule        string   `json:"schedule"`
//	    MaxParticipants int      `json:"max_participants"`
//	    Participants    []string `json:"participants"`
//	}
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string `json:"type"`
//	    Title   string `json:"title"`
//	    Status  int    `json:"status"`
//	    Detail  string `json:"detail"`
//	}
//
// The Detail field carries the human-readable message clients display.
package model
