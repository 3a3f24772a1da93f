package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/service"
)

// ActivityRegistry is the service interface the handler depends on
type ActivityRegistry interface {
	ListActivities(ctx context.Context) (map[string]*model.Activity, error)
	Signup(ctx context.Context, name, email string) (*service.SignupResult, error)
	Unregister(ctx context.Context, name, email string) (*service.SignupResult, error)
}

// ActivityHandler handles activity registry HTTP requests
type ActivityHandler struct {
	svc ActivityRegistry
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(svc ActivityRegistry) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// List handles GET /activities - list all activities with their rosters
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	activities, err := h.svc.ListActivities(r.Context())
	if err != nil {
		WriteError(w, model.NewInternalError(""))
		return
	}

	WriteJSON(w, http.StatusOK, activities)
}

// Signup handles POST /activities/{activityName}/signup - enroll a student.
// The activity name arrives percent-decoded via PathValue; the student email
// is taken from the email query parameter, matching the original API shape.
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("activityName")
	email := r.URL.Query().Get("email")

	result, err := h.svc.Signup(r.Context(), name, email)
	if err != nil {
		WriteError(w, MapRegistryError(err, email))
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", result.Email, result.Activity),
	})
}

// Unregister handles POST /activities/{activityName}/unregister - remove a
// student from an activity's roster.
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("activityName")
	email := r.URL.Query().Get("email")

	result, err := h.svc.Unregister(r.Context(), name, email)
	if err != nil {
		WriteError(w, MapRegistryError(err, email))
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", result.Email, result.Activity),
	})
}

// Root handles GET / - redirect to the static landing page
func Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}
