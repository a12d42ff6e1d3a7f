package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/models"
)

type GormApplicationStore struct {
	db *gorm.DB
}

func NewGormApplicationStore(db *gorm.DB) *GormApplicationStore {
	return &GormApplicationStore{db: db}
}

func (s *GormApplicationStore) Create(ctx context.Context, app *models.Application) error {
	if err := s.db.WithContext(ctx).Create(app).Error; err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}

func (s *GormApplicationStore) ListByEmployer(ctx context.Context, employer uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := s.db.WithContext(ctx).
		Where("employer_user = ?", employer).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("list applications by employer: %w", err)
	}
	return apps, nil
}

func (s *GormApplicationStore) ListByApplicant(ctx context.Context, applicant uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := s.db.WithContext(ctx).
		Where("applicant_user = ?", applicant).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("list applications by applicant: %w", err)
	}
	return apps, nil
}

func (s *GormApplicationStore) DeleteOwned(ctx context.Context, id, applicant uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND applicant_user = ?", id, applicant).
		Delete(&models.Application{})
	if result.Error != nil {
		return fmt.Errorf("delete application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
