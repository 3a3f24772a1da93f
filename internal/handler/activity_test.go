package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/repository"
	"github.com/mergington/activities/internal/service"
)

// ============================================================================
// Mock ActivityRegistry
// ============================================================================

type mockRegistry struct {
	listFunc       func(ctx context.Context) (map[string]*model.Activity, error)
	signupFunc     func(ctx context.Context, name, email string) (*service.SignupResult, error)
	unregisterFunc func(ctx context.Context, name, email string) (*service.SignupResult, error)
}

func (m *mockRegistry) ListActivities(ctx context.Context) (map[string]*model.Activity, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockRegistry) Signup(ctx context.Context, name, email string) (*service.SignupResult, error) {
	if m.signupFunc != nil {
		return m.signupFunc(ctx, name, email)
	}
	return &service.SignupResult{Activity: name, Email: email}, nil
}

func (m *mockRegistry) Unregister(ctx context.Context, name, email string) (*service.SignupResult, error) {
	if m.unregisterFunc != nil {
		return m.unregisterFunc(ctx, name, email)
	}
	return &service.SignupResult{Activity: name, Email: email}, nil
}

// ============================================================================
// Test Helpers
// ============================================================================

func newMux(h *ActivityHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /activities", h.List)
	mux.HandleFunc("POST /activities/{activityName}/signup", h.Signup)
	mux.HandleFunc("POST /activities/{activityName}/unregister", h.Unregister)
	mux.HandleFunc("GET /{$}", Root)
	return mux
}

// newTestServer wires the real repository and service behind the handler so
// multi-request scenarios exercise the full stack.
func newTestServer(t *testing.T, seed map[string]*model.Activity) *http.ServeMux {
	t.Helper()
	repo := repository.NewActivityRepository(seed)
	svc := service.NewActivityService(service.ActivityServiceConfig{Repo: repo})
	return newMux(NewActivityHandler(svc))
}

func doRequest(mux *http.ServeMux, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

// ============================================================================
// Error Mapping
// ============================================================================

func TestSignup_UnknownActivity_Returns404(t *testing.T) {
	t.Parallel()

	h := NewActivityHandler(&mockRegistry{
		signupFunc: func(ctx context.Context, name, email string) (*service.SignupResult, error) {
			return nil, service.ErrActivityNotFound
		},
	})

	rr := doRequest(newMux(h), http.MethodPost, "/activities/Nonexistent%20Activity/signup?email=student@mergington.edu")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Activity not found", body["detail"])
}

func TestSignup_Duplicate_Returns400(t *testing.T) {
	t.Parallel()

	h := NewActivityHandler(&mockRegistry{
		signupFunc: func(ctx context.Context, name, email string) (*service.SignupResult, error) {
			return nil, service.ErrAlreadySignedUp
		},
	})

	rr := doRequest(newMux(h), http.MethodPost, "/activities/Chess%20Club/signup?email=michael@mergington.edu")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "michael@mergington.edu already signed up", body["detail"])
}

func TestSignup_Full_Returns400(t *testing.T) {
	t.Parallel()

	h := NewActivityHandler(&mockRegistry{
		signupFunc: func(ctx context.Context, name, email string) (*service.SignupResult, error) {
			return nil, service.ErrActivityFull
		},
	})

	rr := doRequest(newMux(h), http.MethodPost, "/activities/Tennis%20Club/signup?email=newstudent@mergington.edu")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Activity is full", body["detail"])
}

func TestUnregister_NotRegistered_Returns400(t *testing.T) {
	t.Parallel()

	h := NewActivityHandler(&mockRegistry{
		unregisterFunc: func(ctx context.Context, name, email string) (*service.SignupResult, error) {
			return nil, service.ErrNotRegistered
		},
	})

	rr := doRequest(newMux(h), http.MethodPost, "/activities/Chess%20Club/unregister?email=notregistered@mergington.edu")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "notregistered@mergington.edu not registered for this activity", body["detail"])
}

func TestSignup_UnexpectedError_Returns500(t *testing.T) {
	t.Parallel()

	h := NewActivityHandler(&mockRegistry{
		signupFunc: func(ctx context.Context, name, email string) (*service.SignupResult, error) {
			return nil, fmt.Errorf("registry corrupted")
		},
	})

	rr := doRequest(newMux(h), http.MethodPost, "/activities/Chess%20Club/signup?email=x@mergington.edu")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// ============================================================================
// Full-stack scenarios
// ============================================================================

func TestGetActivities_ReturnsSeededRegistry(t *testing.T) {
	t.Parallel()

	mux := newTestServer(t, service.DefaultActivities())

	rr := doRequest(mux, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, rr.Code)

	var activities map[string]*model.Activity
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &activities))
	assert.Len(t, activities, 9)
	assert.Contains(t, activities, "Chess Club")
	assert.Contains(t, activities, "Programming Class")

	for name, activity := range activities {
		assert.NotEmpty(t, activity.Description, name)
		assert.NotEmpty(t, activity.Schedule, name)
		assert.Positive(t, activity.MaxParticipants, name)
		assert.NotNil(t, activity.Participants, name)
	}
}

func TestSignup_NewStudent_AppearsInListing(t *testing.T) {
	t.Parallel()

	mux := newTestServer(t, service.DefaultActivities())

	rr := doRequest(mux, http.MethodPost, "/activities/Chess%20Club/signup?email=newstudent@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Signed up newstudent@mergington.edu for Chess Club", body["message"])

	rr = doRequest(mux, http.MethodGet, "/activities")
	var activities map[string]*model.Activity
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &activities))
	require.Len(t, activities["Chess Club"].Participants, 3)
	assert.Contains(t, activities["Chess Club"].Participants, "newstudent@mergington.edu")
}

func TestUnregister_Student_RemovedFromListing(t *testing.T) {
	t.Parallel()

	mux := newTestServer(t, service.DefaultActivities())

	rr := doRequest(mux, http.MethodPost, "/activities/Chess%20Club/unregister?email=michael@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Unregistered michael@mergington.edu from Chess Club", body["message"])

	rr = doRequest(mux, http.MethodGet, "/activities")
	var activities map[string]*model.Activity
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &activities))
	assert.NotContains(t, activities["Chess Club"].Participants, "michael@mergington.edu")
}

func TestSignup_FullActivity_FreesSlotAfterUnregister(t *testing.T) {
	t.Parallel()

	roster := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		roster = append(roster, fmt.Sprintf("student%d@mergington.edu", i))
	}
	seed := map[string]*model.Activity{
		"Tennis Club": {
			Description:     "Learn tennis techniques and participate in tournaments",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    roster,
		},
	}
	mux := newTestServer(t, seed)

	rr := doRequest(mux, http.MethodPost, "/activities/Tennis%20Club/signup?email=newstudent@mergington.edu")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Activity is full", decodeBody(t, rr)["detail"])

	rr = doRequest(mux, http.MethodPost, "/activities/Tennis%20Club/unregister?email=student0@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(mux, http.MethodPost, "/activities/Tennis%20Club/signup?email=newstudent@mergington.edu")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestSignup_MissingEmail_Returns400(t *testing.T) {
	t.Parallel()

	mux := newTestServer(t, service.DefaultActivities())

	rr := doRequest(mux, http.MethodPost, "/activities/Chess%20Club/signup")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRoot_RedirectsToStaticIndex(t *testing.T) {
	t.Parallel()

	mux := newTestServer(t, service.DefaultActivities())

	rr := doRequest(mux, http.MethodGet, "/")
	assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)
	assert.Equal(t, "/static/index.html", rr.Header().Get("Location"))
}

func TestHealth_ReturnsOK(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", decodeBody(t, rr)["status"])
}
