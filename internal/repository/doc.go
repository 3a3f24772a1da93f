// Package repository implements the data access layer for the Mergington
// activities API.
//
// The repository package holds the in-memory activity registry. There is no
// durable storage: the registry is seeded once at process start and its
// contents reset on restart.
//
// # Repository Pattern
//
// The repository follows the same shape a database-backed layer would:
//
//   - Constructor function (NewActivityRepository) accepts the seed data
//   - Methods implement specific data operations (Get, List, AddParticipant,
//     RemoveParticipant)
//   - Results are deep copies, never references into registry state
//
// # Concurrency
//
// A sync.RWMutex guards the backing map so any single operation is safe under
// concurrent requests. Compound sequences (check capacity, then append) are
// serialized by the service layer, which owns the business rules.
//
// # Example Usage
//
//	repo := repository.NewActivityRepository(service.DefaultActivities())
//	activity, err := repo.Get(ctx, "Chess Club")
//	if err != nil {
//	    return err
//	}
//	if activity == nil {
//	    // Handle not found
//	}
package repository
