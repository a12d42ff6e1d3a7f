package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"jobboard/internal/dto"
	"jobboard/internal/models"
	"jobboard/internal/repository"
	"jobboard/internal/resumehost"
)

// ApplicationService is the submission ledger.
type ApplicationService struct {
	apps     repository.ApplicationStore
	jobs     repository.JobStore
	resumes  resumehost.Uploader
	validate *validator.Validate
}

func NewApplicationService(apps repository.ApplicationStore, jobs repository.JobStore, resumes resumehost.Uploader) *ApplicationService {
	return &ApplicationService{
		apps:     apps,
		jobs:     jobs,
		resumes:  resumes,
		validate: validator.New(),
	}
}

// Submit uploads the resume, resolves the target job and records the
// submission with point-in-time role attestations for both parties. The
// upload is awaited before anything persists; an upload failure aborts the
// whole request.
func (s *ApplicationService) Submit(ctx context.Context, applicant *models.User, req *dto.ApplicationRequest, filename, contentType string, resume io.Reader) (*models.Application, error) {
	upload, err := s.resumes.Upload(ctx, filename, contentType, resume)
	if err != nil {
		slog.Error("resume upload failed", "error", err, "applicant", applicant.ID)
		return nil, fmt.Errorf("%w: %v", ErrResumeUpload, err)
	}

	if err := s.validate.Struct(req); err != nil {
		return nil, invalid(err)
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return nil, ErrJobNotFound
	}
	job, err := s.jobs.FindByID(ctx, jobID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrJobNotFound
	} else if err != nil {
		return nil, err
	}
	if job.Expired {
		return nil, ErrJobExpired
	}

	app := &models.Application{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       req.Email,
		CoverLetter: req.CoverLetter,
		Phone:       req.Phone,
		Address:     req.Address,
		Resume: models.Resume{
			PublicID: upload.PublicID,
			URL:      upload.URL,
		},
		ApplicantID: models.PartyRef{User: applicant.ID, Role: models.RoleJobSeeker},
		EmployerID:  models.PartyRef{User: job.PostedBy, Role: models.RoleEmployer},
	}
	if err := s.apps.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) ListForEmployer(ctx context.Context, employer uuid.UUID) ([]models.Application, error) {
	return s.apps.ListByEmployer(ctx, employer)
}

func (s *ApplicationService) ListForSeeker(ctx context.Context, applicant uuid.UUID) ([]models.Application, error) {
	return s.apps.ListByApplicant(ctx, applicant)
}

// Withdraw deletes the submission, but only for the seeker who made it. The
// employer side may view applications yet never delete them.
func (s *ApplicationService) Withdraw(ctx context.Context, applicant, id uuid.UUID) error {
	err := s.apps.DeleteOwned(ctx, id, applicant)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrApplicationNotFound
	}
	return err
}
