package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSalaryMissing  = errors.New("provide salary details")
	ErrSalaryConflict = errors.New("provide either fixed or ranged salary")
)

// Job is a posting owned by an Employer. Exactly one of FixedSalary or the
// (SalaryFrom, SalaryTo) range is set.
type Job struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"size:30;not null" json:"title"`
	Description string    `gorm:"size:500;not null" json:"description"`
	Category    string    `gorm:"size:100;not null" json:"category"`
	Country     string    `gorm:"size:100;not null" json:"country"`
	City        string    `gorm:"size:100;not null" json:"city"`
	Location    string    `gorm:"type:text;not null" json:"location"`
	FixedSalary *int64    `json:"fixedSalary,omitempty"`
	SalaryFrom  *int64    `json:"salaryFrom,omitempty"`
	SalaryTo    *int64    `json:"salaryTo,omitempty"`
	Expired     bool      `gorm:"default:false;index" json:"expired"`
	PostedOn    time.Time `gorm:"autoCreateTime" json:"jobPostedOn"`
	PostedBy    uuid.UUID `gorm:"type:uuid;not null;index" json:"postedBy"`
}

// ValidateSalary enforces the exclusive-or rule: either a fixed amount or a
// complete range, never both, never neither. A partial range counts as
// neither.
func ValidateSalary(fixed, from, to *int64) error {
	hasFixed := fixed != nil
	hasRange := from != nil && to != nil
	partial := (from != nil || to != nil) && !hasRange

	switch {
	case hasFixed && (hasRange || partial):
		return ErrSalaryConflict
	case !hasFixed && !hasRange:
		return ErrSalaryMissing
	}
	return nil
}
