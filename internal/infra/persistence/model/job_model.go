package model

import (
	"time"

	"github.com/google/uuid"
)

// JobModel mirrors the 'jobs' table. UserID references users.id; the FK keeps
// the owner invariant even if application code misbehaves.
type JobModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyName     string    `gorm:"type:varchar(255);not null"`
	JobTitle        string    `gorm:"type:varchar(255);not null"`
	ApplicationDate time.Time `gorm:"type:date;not null"`
	Status          string    `gorm:"type:varchar(32);not null;default:'Applied'"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (JobModel) TableName() string {
	return "jobs"
}
