package services

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"jobboard/internal/dto"
	"jobboard/internal/models"
	"jobboard/internal/repository"
)

// JobService is the posting catalog. Role gating happens in the
// authorization gateway before any of these run; ownership is enforced here.
type JobService struct {
	jobs     repository.JobStore
	validate *validator.Validate
}

func NewJobService(jobs repository.JobStore) *JobService {
	return &JobService{
		jobs:     jobs,
		validate: validator.New(),
	}
}

func (s *JobService) ListOpen(ctx context.Context) ([]models.Job, error) {
	return s.jobs.ListOpen(ctx)
}

func (s *JobService) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrJobNotFound
	}
	return job, err
}

func (s *JobService) Create(ctx context.Context, owner uuid.UUID, req *dto.JobRequest) (*models.Job, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, invalid(err)
	}
	if err := models.ValidateSalary(req.FixedSalary, req.SalaryFrom, req.SalaryTo); err != nil {
		return nil, &ValidationError{Message: salaryMessage(err)}
	}

	job := &models.Job{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Country:     req.Country,
		City:        req.City,
		Location:    req.Location,
		FixedSalary: req.FixedSalary,
		SalaryFrom:  req.SalaryFrom,
		SalaryTo:    req.SalaryTo,
		PostedBy:    owner,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) ListMine(ctx context.Context, owner uuid.UUID) ([]models.Job, error) {
	return s.jobs.ListByOwner(ctx, owner)
}

// Update is replace-style and owner-scoped: a job belonging to another
// employer looks exactly like a missing one. Setting Expired here is the
// soft-expiry path.
func (s *JobService) Update(ctx context.Context, owner, id uuid.UUID, req *dto.JobRequest) (*models.Job, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, invalid(err)
	}
	if err := models.ValidateSalary(req.FixedSalary, req.SalaryFrom, req.SalaryTo); err != nil {
		return nil, &ValidationError{Message: salaryMessage(err)}
	}

	job, err := s.jobs.FindOwned(ctx, id, owner)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrJobNotFound
	} else if err != nil {
		return nil, err
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Category = req.Category
	job.Country = req.Country
	job.City = req.City
	job.Location = req.Location
	job.FixedSalary = req.FixedSalary
	job.SalaryFrom = req.SalaryFrom
	job.SalaryTo = req.SalaryTo
	if req.Expired != nil {
		job.Expired = *req.Expired
	}

	if err := s.jobs.Save(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) Delete(ctx context.Context, owner, id uuid.UUID) error {
	err := s.jobs.DeleteOwned(ctx, id, owner)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrJobNotFound
	}
	return err
}

func salaryMessage(err error) string {
	if errors.Is(err, models.ErrSalaryConflict) {
		return "Provide either fixed or ranged salary"
	}
	return "Provide salary details"
}
