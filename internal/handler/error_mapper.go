package handler

import (
	"errors"
	"fmt"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/service"
)

// MapRegistryError converts a service error to a ProblemDetails response.
// This centralizes error handling for the registry endpoints, ensuring
// consistent HTTP status codes and error messages across the API. The email
// is interpolated into the messages that reference the affected student.
func MapRegistryError(err error, email string) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrActivityNotFound):
		return model.NewNotFoundError("Activity not found")

	// ===== Registry Rule Violations → 400 =====
	case errors.Is(err, service.ErrAlreadySignedUp):
		return model.NewBadRequestError(fmt.Sprintf("%s already signed up", email))
	case errors.Is(err, service.ErrActivityFull):
		return model.NewBadRequestError("Activity is full")
	case errors.Is(err, service.ErrNotRegistered):
		return model.NewBadRequestError(fmt.Sprintf("%s not registered for this activity", email))

	// ===== Boundary Validation → 400 =====
	case errors.Is(err, service.ErrEmailRequired):
		return model.NewBadRequestError("email query parameter is required")

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
