package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"jobtrack/internal/domain/entity"
	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/domain/repository"
	"jobtrack/internal/domain/validation"
	"jobtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// jobService implements the JobUsecase interface.
type jobService struct {
	jobRepo repository.JobRepository
	logger  *slog.Logger
}

// JobServiceParams holds dependencies for jobService, injected by Fx.
type JobServiceParams struct {
	fx.In

	JobRepo repository.JobRepository
	Logger  *slog.Logger
}

// NewJobService is the constructor for jobService.
func NewJobService(params JobServiceParams) usecase.JobUsecase {
	return &jobService{
		jobRepo: params.JobRepo,
		logger:  params.Logger,
	}
}

// Create validates and persists a new job application for its owner.
func (srv *jobService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateJobInput) (*usecase.JobView, error) {
	fields := validation.FieldErrors{}

	if msg := validation.CompanyName(input.CompanyName); msg != "" {
		fields["companyName"] = msg
	}
	if msg := validation.JobTitle(input.JobTitle); msg != "" {
		fields["jobTitle"] = msg
	}
	appDate, msg := validation.ApplicationDate(input.ApplicationDate)
	if msg != "" {
		fields["applicationDate"] = msg
	}

	status := entity.StatusApplied
	if input.Status != "" {
		parsed, msg := validation.Status(input.Status)
		if msg != "" {
			fields["status"] = msg
		} else {
			status = parsed
		}
	}

	if len(fields) > 0 {
		return nil, validationError(fields)
	}

	job := &entity.JobApplication{
		UserID:          userID,
		CompanyName:     input.CompanyName,
		JobTitle:        input.JobTitle,
		ApplicationDate: appDate,
		Status:          status,
	}
	if err := srv.jobRepo.Create(ctx, job); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		srv.logger.Error("Failed to create job application", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Debug("Job application created", slog.Any("userID", userID), slog.Any("jobID", job.ID))

	return usecase.NewJobView(job), nil
}

// List returns the owner's job applications, newest-created-first.
func (srv *jobService) List(ctx context.Context, userID uuid.UUID) ([]*usecase.JobView, error) {
	jobs, err := srv.jobRepo.ListByOwner(ctx, userID)
	if err != nil {
		srv.logger.Error("Failed to list job applications", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	// The repository already orders by created_at; keep the contract honest
	// even against a repository that does not.
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})

	views := make([]*usecase.JobView, 0, len(jobs))
	for _, job := range jobs {
		views = append(views, usecase.NewJobView(job))
	}

	return views, nil
}

// Get returns one job application scoped by owner.
func (srv *jobService) Get(ctx context.Context, userID, jobID uuid.UUID) (*usecase.JobView, error) {
	job, err := srv.jobRepo.FindByIDAndOwner(ctx, jobID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, errors.WithStack(domainerrors.ErrJobNotFound)
		}

		return nil, err
	}

	return usecase.NewJobView(job), nil
}

// Update validates the present fields of the patch, loads the owned record,
// applies the patch and persists it. Nothing is written when validation fails.
func (srv *jobService) Update(ctx context.Context, userID, jobID uuid.UUID, input *usecase.UpdateJobInput) (*usecase.JobView, error) {
	patch, fields := buildJobPatch(input)
	if len(fields) > 0 {
		return nil, validationError(fields)
	}
	if patch.Empty() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("At least one field must be provided for update"))
	}

	job, err := srv.jobRepo.FindByIDAndOwner(ctx, jobID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, errors.WithStack(domainerrors.ErrJobNotFound)
		}

		return nil, err
	}

	patch.Apply(job)

	if err := srv.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, errors.WithStack(domainerrors.ErrJobNotFound)
		}

		srv.logger.Error("Failed to update job application", slog.Any("jobID", jobID), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Debug("Job application updated", slog.Any("userID", userID), slog.Any("jobID", jobID))

	return usecase.NewJobView(job), nil
}

// Delete removes one job application scoped by owner.
func (srv *jobService) Delete(ctx context.Context, userID, jobID uuid.UUID) error {
	if err := srv.jobRepo.DeleteByIDAndOwner(ctx, jobID, userID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return errors.WithStack(domainerrors.ErrJobNotFound)
		}

		srv.logger.Error("Failed to delete job application", slog.Any("jobID", jobID), slog.Any("error", err))

		return err
	}

	srv.logger.Debug("Job application deleted", slog.Any("userID", userID), slog.Any("jobID", jobID))

	return nil
}

// buildJobPatch validates every present field with the creation rules and
// converts them into the explicit optional-field set.
func buildJobPatch(input *usecase.UpdateJobInput) (*entity.JobApplicationPatch, validation.FieldErrors) {
	patch := &entity.JobApplicationPatch{}
	fields := validation.FieldErrors{}

	if input.CompanyName != nil {
		if msg := validation.CompanyName(*input.CompanyName); msg != "" {
			fields["companyName"] = msg
		} else {
			patch.CompanyName = input.CompanyName
		}
	}
	if input.JobTitle != nil {
		if msg := validation.JobTitle(*input.JobTitle); msg != "" {
			fields["jobTitle"] = msg
		} else {
			patch.JobTitle = input.JobTitle
		}
	}
	if input.ApplicationDate != nil {
		if day, msg := validation.ApplicationDate(*input.ApplicationDate); msg != "" {
			fields["applicationDate"] = msg
		} else {
			patch.ApplicationDate = &day
		}
	}
	if input.Status != nil {
		if status, msg := validation.Status(*input.Status); msg != "" {
			fields["status"] = msg
		} else {
			patch.Status = &status
		}
	}

	return patch, fields
}

// validationError folds per-field messages into a single ErrValidationFailed
// with deterministic detail ordering.
func validationError(fields validation.FieldErrors) error {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	details := ""
	for i, key := range keys {
		if i > 0 {
			details += "; "
		}
		details += fmt.Sprintf("%s: %s", key, fields[key])
	}

	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(details))
}
