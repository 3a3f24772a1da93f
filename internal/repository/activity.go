package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/mergington/activities/internal/model"
)

// ActivityRepository is the in-memory activity registry. It owns all activity
// records exclusively; every accessor deep-copies on the way in and out so no
// caller can alias registry state. A sync.RWMutex keeps individual operations
// safe under concurrent requests; the service layer serializes compound
// read-modify-write sequences on top of this.
type ActivityRepository struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
}

// NewActivityRepository creates a registry populated from the given seed.
// The seed is copied; the caller's map stays untouched.
func NewActivityRepository(seed map[string]*model.Activity) *ActivityRepository {
	activities := make(map[string]*model.Activity, len(seed))
	for name, activity := range seed {
		activities[name] = activity.Clone()
	}
	return &ActivityRepository{activities: activities}
}

// Get returns a copy of the named activity, or (nil, nil) if it does not exist.
func (r *ActivityRepository) Get(ctx context.Context, name string) (*model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, nil
	}
	return activity.Clone(), nil
}

// List returns a snapshot of every activity keyed by name.
func (r *ActivityRepository) List(ctx context.Context) (map[string]*model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]*model.Activity, len(r.activities))
	for name, activity := range r.activities {
		snapshot[name] = activity.Clone()
	}
	return snapshot, nil
}

// AddParticipant appends email to the named activity's roster, preserving
// signup order. Capacity and duplicate checks belong to the service layer.
func (r *ActivityRepository) AddParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return fmt.Errorf("add participant: activity %q not in registry", name)
	}
	activity.Participants = append(activity.Participants, email)
	return nil
}

// RemoveParticipant drops exactly one occurrence of email from the named
// activity's roster, preserving the relative order of the rest.
func (r *ActivityRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return fmt.Errorf("remove participant: activity %q not in registry", name)
	}
	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("remove participant: %q not on roster of %q", email, name)
}
