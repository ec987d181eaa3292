// Package usecase provides testify mocks for the usecase interfaces.
package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"jobtrack/internal/usecase"
)

// MockUserUsecase mocks usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

// NewMockUserUsecase builds a mock whose expectations are asserted on test cleanup.
func NewMockUserUsecase(t *testing.T) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.AuthOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.AuthOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) Profile(ctx context.Context, userID uuid.UUID) (*usecase.UserProfile, error) {
	args := m.Called(ctx, userID)
	if profile, ok := args.Get(0).(*usecase.UserProfile); ok {
		return profile, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockJobUsecase mocks usecase.JobUsecase.
type MockJobUsecase struct {
	mock.Mock
}

// NewMockJobUsecase builds a mock whose expectations are asserted on test cleanup.
func NewMockJobUsecase(t *testing.T) *MockJobUsecase {
	m := &MockJobUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockJobUsecase) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateJobInput) (*usecase.JobView, error) {
	args := m.Called(ctx, userID, input)
	if view, ok := args.Get(0).(*usecase.JobView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockJobUsecase) List(ctx context.Context, userID uuid.UUID) ([]*usecase.JobView, error) {
	args := m.Called(ctx, userID)
	if views, ok := args.Get(0).([]*usecase.JobView); ok {
		return views, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockJobUsecase) Get(ctx context.Context, userID, jobID uuid.UUID) (*usecase.JobView, error) {
	args := m.Called(ctx, userID, jobID)
	if view, ok := args.Get(0).(*usecase.JobView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockJobUsecase) Update(ctx context.Context, userID, jobID uuid.UUID, input *usecase.UpdateJobInput) (*usecase.JobView, error) {
	args := m.Called(ctx, userID, jobID, input)
	if view, ok := args.Get(0).(*usecase.JobView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockJobUsecase) Delete(ctx context.Context, userID, jobID uuid.UUID) error {
	return m.Called(ctx, userID, jobID).Error(0)
}
