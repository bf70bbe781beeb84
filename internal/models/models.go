package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobPosting is an open position shown on the public careers page.
// Immutable after creation; the only admin operation besides creation
// is a hard delete.
type JobPosting struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Location    string    `gorm:"not null" json:"location"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func (JobPosting) TableName() string { return "jobs" }

func (p *JobPosting) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Application is a candidate's submission against a JobPosting.
//
// JobID is a plain column, not a foreign key constraint: deleting a
// posting leaves its applications in place, so the reference may dangle.
type Application struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	JobID       string    `gorm:"type:uuid;index;not null" json:"job_id"`
	FullName    string    `gorm:"not null" json:"full_name"`
	Email       string    `gorm:"not null" json:"email"`
	Phone       string    `gorm:"not null" json:"phone"`
	CoverLetter string    `gorm:"type:text;not null" json:"cover_letter"`
	CVUrl       *string   `json:"cv_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Application) TableName() string { return "applications" }

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
