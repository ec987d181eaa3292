package repository

import (
	"context"
	"errors"

	"jobtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrJobNotFound is returned when no job matches the (id, owner) pair. A job
// owned by another user is indistinguishable from one that does not exist.
var ErrJobNotFound = errors.New("job application not found")

// JobRepository defines owner-scoped persistence for job applications.
// Every lookup and mutation is keyed by the owner as well as the record id,
// so cross-user access is impossible at this layer rather than being a check
// the use cases have to remember.
type JobRepository interface {
	// Create persists a new job application for its owner.
	Create(ctx context.Context, job *entity.JobApplication) error

	// ListByOwner returns all job applications of the owner,
	// newest-created-first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.JobApplication, error)

	// FindByIDAndOwner retrieves a single job application scoped by owner.
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.JobApplication, error)

	// Update persists the mutated fields of an existing job application.
	// The job must have been loaded through FindByIDAndOwner first.
	Update(ctx context.Context, job *entity.JobApplication) error

	// DeleteByIDAndOwner removes a job application scoped by owner.
	// Returns ErrJobNotFound when nothing was deleted.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error
}
