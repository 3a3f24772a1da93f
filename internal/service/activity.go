package service

import (
	"context"
	"sync"

	"github.com/mergington/activities/internal/metrics"
	"github.com/mergington/activities/internal/model"
)

// ActivityRepository defines the interface for registry storage
type ActivityRepository interface {
	Get(ctx context.Context, name string) (*model.Activity, error)
	List(ctx context.Context) (map[string]*model.Activity, error)
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
}

// ActivityService enforces the capacity and membership rules of the activity
// registry. A single coarse mutex serializes Signup and Unregister so the
// check-then-mutate sequence cannot interleave between requests; contention is
// not a concern at this scale.
type ActivityService struct {
	repo ActivityRepository
	mu   sync.Mutex
}

// ActivityServiceConfig holds service dependencies
type ActivityServiceConfig struct {
	Repo ActivityRepository
}

// NewActivityService creates a new activity service
func NewActivityService(cfg ActivityServiceConfig) *ActivityService {
	return &ActivityService{repo: cfg.Repo}
}

// SignupResult confirms a completed signup or unregistration.
type SignupResult struct {
	Activity string `json:"activity"`
	Email    string `json:"email"`
}

// ListActivities returns a snapshot of every activity keyed by name.
func (s *ActivityService) ListActivities(ctx context.Context) (map[string]*model.Activity, error) {
	return s.repo.List(ctx)
}

// Signup enrolls email in the named activity. Preconditions are checked in
// order: the activity must exist, the email must not already be on the roster,
// and the roster must be below capacity. Emails are compared exactly; no case
// folding or trimming is applied.
func (s *ActivityService) Signup(ctx context.Context, name, email string) (*SignupResult, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	activity, err := s.repo.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}
	if activity.HasParticipant(email) {
		return nil, ErrAlreadySignedUp
	}
	if activity.IsFull() {
		return nil, ErrActivityFull
	}

	if err := s.repo.AddParticipant(ctx, name, email); err != nil {
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues(name).Inc()
	return &SignupResult{Activity: name, Email: email}, nil
}

// Unregister removes email from the named activity. The activity must exist
// and the email must currently be on the roster. Exactly one occurrence is
// removed, preserving the relative order of the remaining participants.
func (s *ActivityService) Unregister(ctx context.Context, name, email string) (*SignupResult, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	activity, err := s.repo.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}
	if !activity.HasParticipant(email) {
		return nil, ErrNotRegistered
	}

	if err := s.repo.RemoveParticipant(ctx, name, email); err != nil {
		return nil, err
	}

	metrics.UnregistrationsTotal.WithLabelValues(name).Inc()
	return &SignupResult{Activity: name, Email: email}, nil
}
