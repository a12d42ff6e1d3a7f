package models

import (
	"time"

	"github.com/google/uuid"
)

// PartyRef tags a user reference with the role it held at submission time.
// It is a point-in-time attestation, not a live join against the user row.
type PartyRef struct {
	User uuid.UUID `gorm:"type:uuid;not null;index" json:"user"`
	Role Role      `gorm:"size:20;not null" json:"role"`
}

// Resume points at the externally hosted file.
type Resume struct {
	PublicID string `gorm:"size:255;not null" json:"public_id"`
	URL      string `gorm:"type:text;not null" json:"url"`
}

// Application links a seeker's submission to a job's employer.
type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"size:30;not null" json:"name"`
	Email       string    `gorm:"size:255;not null" json:"email"`
	CoverLetter string    `gorm:"type:text;not null" json:"coverLetter"`
	Phone       string    `gorm:"size:20;not null" json:"phone"`
	Address     string    `gorm:"type:text;not null" json:"address"`
	Resume      Resume    `gorm:"embedded;embeddedPrefix:resume_" json:"resume"`
	ApplicantID PartyRef  `gorm:"embedded;embeddedPrefix:applicant_" json:"applicantID"`
	EmployerID  PartyRef  `gorm:"embedded;embeddedPrefix:employer_" json:"employerID"`
	CreatedAt   time.Time `json:"created_at"`
}
