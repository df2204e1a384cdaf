package model

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionStatusNew is the only status this system ever writes; review and
// promotion happen outside it.
const SubmissionStatusNew = "new"

// BusinessSubmission is a pending registration awaiting manual approval.
// Created exactly once per successful form submission, never read back.
type BusinessSubmission struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BusinessName string    `gorm:"not null"`
	CategoryID   *uuid.UUID `gorm:"type:uuid"`
	ContactName  string    `gorm:"not null"`
	Email        string    `gorm:"not null"`
	Phone        *string
	Description  *string
	Hours        *string
	Image        *string
	Status       string `gorm:"not null;default:'new'"`
	CreatedAt    time.Time
}

func (BusinessSubmission) TableName() string { return "business_submissions" }
