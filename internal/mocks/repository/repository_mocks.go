// Package repository provides testify mocks for the persistence interfaces.
package repository

import (
	"context"
	"testing"

	"jobtrack/internal/domain/entity"
	"jobtrack/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository builds a mock whose expectations are asserted on test cleanup.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

// MockJobRepository mocks repository.JobRepository.
type MockJobRepository struct {
	mock.Mock
}

// NewMockJobRepository builds a mock whose expectations are asserted on test cleanup.
func NewMockJobRepository(t *testing.T) *MockJobRepository {
	m := &MockJobRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockJobRepository) Create(ctx context.Context, job *entity.JobApplication) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.JobApplication, error) {
	args := m.Called(ctx, ownerID)
	if jobs, ok := args.Get(0).([]*entity.JobApplication); ok {
		return jobs, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockJobRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.JobApplication, error) {
	args := m.Called(ctx, id, ownerID)
	if job, ok := args.Get(0).(*entity.JobApplication); ok {
		return job, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockJobRepository) Update(ctx context.Context, job *entity.JobApplication) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

// MockTransactionManager mocks repository.TransactionManager. The callback is
// executed against the provided factory so transactional logic still runs.
type MockTransactionManager struct {
	mock.Mock

	Factory repository.RepositoryFactory
}

// NewMockTransactionManager builds a pass-through transaction manager backed
// by the given factory.
func NewMockTransactionManager(t *testing.T, factory repository.RepositoryFactory) *MockTransactionManager {
	m := &MockTransactionManager{Factory: factory}
	m.Test(t)

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}

// StubRepositoryFactory hands out fixed repositories, ignoring transaction
// boundaries. Good enough for use case tests.
type StubRepositoryFactory struct {
	Users repository.UserRepository
	Jobs  repository.JobRepository
}

func (f *StubRepositoryFactory) UserRepo() repository.UserRepository {
	return f.Users
}

func (f *StubRepositoryFactory) JobRepo() repository.JobRepository {
	return f.Jobs
}
