// Package repository holds the persistence interfaces and their GORM
// implementations. Services depend on the interfaces only.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/models"
)

// ErrNotFound is returned when a referenced row does not exist, or when an
// owner-scoped operation matched nothing (the two cases are deliberately
// indistinguishable).
var ErrNotFound = errors.New("repository: record not found")

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type JobStore interface {
	Create(ctx context.Context, job *models.Job) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	FindOwned(ctx context.Context, id, owner uuid.UUID) (*models.Job, error)
	ListOpen(ctx context.Context) ([]models.Job, error)
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]models.Job, error)
	Save(ctx context.Context, job *models.Job) error
	DeleteOwned(ctx context.Context, id, owner uuid.UUID) error
}

type ApplicationStore interface {
	Create(ctx context.Context, app *models.Application) error
	ListByEmployer(ctx context.Context, employer uuid.UUID) ([]models.Application, error)
	ListByApplicant(ctx context.Context, applicant uuid.UUID) ([]models.Application, error)
	DeleteOwned(ctx context.Context, id, applicant uuid.UUID) error
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
