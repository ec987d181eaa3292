package usecase

import (
	"context"
	"time"

	"jobtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// dateLayout is the wire format for application dates.
const dateLayout = "2006-01-02"

// --- Input DTOs ---

// CreateJobInput defines the data required to create a job application.
// Field-level rules live in the validation package, not in struct tags,
// because the messages and the date/enum semantics are part of the contract.
type CreateJobInput struct {
	CompanyName     string `json:"companyName"`
	JobTitle        string `json:"jobTitle"`
	ApplicationDate string `json:"applicationDate"`
	Status          string `json:"status"`
}

// UpdateJobInput is the partial-update payload. Each field is a present/absent
// marker; nil means "leave unchanged". A payload with no recognized field is
// rejected as a whole.
type UpdateJobInput struct {
	CompanyName     *string `json:"companyName"`
	JobTitle        *string `json:"jobTitle"`
	ApplicationDate *string `json:"applicationDate"`
	Status          *string `json:"status"`
}

// --- Output DTOs ---

// JobView is the API projection of a JobApplication.
type JobView struct {
	ID              uuid.UUID `json:"id"`
	CompanyName     string    `json:"companyName"`
	JobTitle        string    `json:"jobTitle"`
	ApplicationDate string    `json:"applicationDate"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NewJobView maps a JobApplication entity to its API projection.
func NewJobView(job *entity.JobApplication) *JobView {
	return &JobView{
		ID:              job.ID,
		CompanyName:     job.CompanyName,
		JobTitle:        job.JobTitle,
		ApplicationDate: job.ApplicationDate.Format(dateLayout),
		Status:          string(job.Status),
		CreatedAt:       job.CreatedAt,
		UpdatedAt:       job.UpdatedAt,
	}
}

// JobUsecase defines the owner-scoped operations on job applications. The
// userID always comes from a verified token, never from the payload.
type JobUsecase interface {
	// Create validates the input and persists a new job application for the
	// owner. Status defaults to Applied when omitted.
	Create(ctx context.Context, userID uuid.UUID, input *CreateJobInput) (*JobView, error)

	// List returns the owner's job applications, newest-created-first.
	List(ctx context.Context, userID uuid.UUID) ([]*JobView, error)

	// Get returns one job application, or ErrJobNotFound when absent or
	// owned by someone else.
	Get(ctx context.Context, userID, jobID uuid.UUID) (*JobView, error)

	// Update applies a partial update. Present fields are validated with the
	// creation rules; absent fields stay unchanged.
	Update(ctx context.Context, userID, jobID uuid.UUID, input *UpdateJobInput) (*JobView, error)

	// Delete removes one job application, scoped by owner.
	Delete(ctx context.Context, userID, jobID uuid.UUID) error
}
