package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Registry Errors =====
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("already signed up for this activity")
	ErrActivityFull     = errors.New("activity is full")
	ErrNotRegistered    = errors.New("not registered for this activity")
	ErrEmailRequired    = errors.New("email is required")
)
