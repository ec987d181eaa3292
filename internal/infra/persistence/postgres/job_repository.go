package postgres

import (
	"context"

	"jobtrack/internal/domain/entity"
	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/domain/repository"
	"jobtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// jobRepository implements the repository.JobRepository interface using GORM.
// Every query carries the owner in its WHERE clause; there is no unscoped
// variant to misuse.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository(db *gorm.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

// Create persists a new job application.
func (repo *jobRepository) Create(ctx context.Context, job *entity.JobApplication) error {
	jobM := fromJobDomain(job)

	if err := repo.db.WithContext(ctx).Create(jobM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			// Owner row vanished between token verification and insert.
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create job application")
	}

	job.ID = jobM.ID
	job.CreatedAt = jobM.CreatedAt
	job.UpdatedAt = jobM.UpdatedAt

	return nil
}

// ListByOwner returns the owner's job applications, newest-created-first.
func (repo *jobRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.JobApplication, error) {
	var jobModels []model.JobModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&jobModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list job applications")
	}

	jobs := make([]*entity.JobApplication, 0, len(jobModels))
	for i := range jobModels {
		jobs = append(jobs, toJobDomain(&jobModels[i]))
	}

	return jobs, nil
}

// FindByIDAndOwner retrieves one job application scoped by owner. A record
// owned by someone else yields the same ErrJobNotFound as a missing one.
func (repo *jobRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.JobApplication, error) {
	var jobM model.JobModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&jobM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job application")
	}

	return toJobDomain(&jobM), nil
}

// Update persists the current state of a job application. The single UPDATE
// either applies completely or not at all; a failed update leaves no partial
// mutation behind.
func (repo *jobRepository) Update(ctx context.Context, job *entity.JobApplication) error {
	jobM := fromJobDomain(job)

	result := repo.db.WithContext(ctx).
		Model(&model.JobModel{}).
		Where("id = ? AND user_id = ?", job.ID, job.UserID).
		Updates(map[string]any{
			"company_name":     jobM.CompanyName,
			"job_title":        jobM.JobTitle,
			"application_date": jobM.ApplicationDate,
			"status":           jobM.Status,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update job application")
	}
	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

// DeleteByIDAndOwner removes a job application scoped by owner.
func (repo *jobRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.JobModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete job application")
	}
	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toJobDomain(data *model.JobModel) *entity.JobApplication {
	if data == nil {
		return nil
	}

	return &entity.JobApplication{
		ID:              data.ID,
		UserID:          data.UserID,
		CompanyName:     data.CompanyName,
		JobTitle:        data.JobTitle,
		ApplicationDate: data.ApplicationDate,
		Status:          entity.ApplicationStatus(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromJobDomain(data *entity.JobApplication) *model.JobModel {
	if data == nil {
		return nil
	}

	return &model.JobModel{
		ID:              data.ID,
		UserID:          data.UserID,
		CompanyName:     data.CompanyName,
		JobTitle:        data.JobTitle,
		ApplicationDate: data.ApplicationDate,
		Status:          string(data.Status),
	}
}
