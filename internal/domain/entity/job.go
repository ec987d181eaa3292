package entity

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the closed set of states a job application moves
// through. Unknown values are rejected at the boundary, never coerced.
type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "Applied"
	StatusInterview ApplicationStatus = "Interview"
	StatusOffer     ApplicationStatus = "Offer"
	StatusRejected  ApplicationStatus = "Rejected"
)

// Statuses lists every valid ApplicationStatus, in lifecycle order.
func Statuses() []ApplicationStatus {
	return []ApplicationStatus{StatusApplied, StatusInterview, StatusOffer, StatusRejected}
}

// Valid reports whether s is one of the four recognized statuses.
// Comparison is case-sensitive.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	default:
		return false
	}
}

// JobApplication is a job-application record owned by exactly one User.
// All reads and writes are scoped by that owner.
type JobApplication struct {
	ID              uuid.UUID
	UserID          uuid.UUID // Owner. Must reference an existing User.
	CompanyName     string
	JobTitle        string
	ApplicationDate time.Time // Day granularity. Never after "today" at creation or update.
	Status          ApplicationStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// JobApplicationPatch is an explicit optional-field set for partial updates.
// A nil field means "leave unchanged"; a present field has already passed the
// same validation as creation.
type JobApplicationPatch struct {
	CompanyName     *string
	JobTitle        *string
	ApplicationDate *time.Time
	Status          *ApplicationStatus
}

// Empty reports whether the patch carries no recognized field. An empty patch
// is rejected as a whole-request validation failure.
func (p *JobApplicationPatch) Empty() bool {
	return p.CompanyName == nil && p.JobTitle == nil && p.ApplicationDate == nil && p.Status == nil
}

// Apply copies the present fields of the patch onto the job.
func (p *JobApplicationPatch) Apply(job *JobApplication) {
	if p.CompanyName != nil {
		job.CompanyName = *p.CompanyName
	}
	if p.JobTitle != nil {
		job.JobTitle = *p.JobTitle
	}
	if p.ApplicationDate != nil {
		job.ApplicationDate = *p.ApplicationDate
	}
	if p.Status != nil {
		job.Status = *p.Status
	}
}
