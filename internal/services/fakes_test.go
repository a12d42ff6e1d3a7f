package services

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"jobboard/internal/models"
	"jobboard/internal/repository"
	"jobboard/internal/resumehost"
)

type fakeUserStore struct {
	byEmail map[string]*models.User
	byID    map[uuid.UUID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byEmail: make(map[string]*models.User),
		byID:    make(map[uuid.UUID]*models.User),
	}
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if _, ok := s.byEmail[user.Email]; ok {
		return errors.New("duplicate email")
	}
	u := *user
	s.byEmail[u.Email] = &u
	s.byID[u.ID] = &u
	return nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := *user
	return &u, nil
}

func (s *fakeUserStore) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := *user
	return &u, nil
}

type fakeJobStore struct {
	jobs map[uuid.UUID]*models.Job
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: make(map[uuid.UUID]*models.Job)}
}

func (s *fakeJobStore) Create(_ context.Context, job *models.Job) error {
	j := *job
	s.jobs[j.ID] = &j
	return nil
}

func (s *fakeJobStore) FindByID(_ context.Context, id uuid.UUID) (*models.Job, error) {
	job, ok := s.jobs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	j := *job
	return &j, nil
}

func (s *fakeJobStore) FindOwned(_ context.Context, id, owner uuid.UUID) (*models.Job, error) {
	job, ok := s.jobs[id]
	if !ok || job.PostedBy != owner {
		return nil, repository.ErrNotFound
	}
	j := *job
	return &j, nil
}

func (s *fakeJobStore) ListOpen(_ context.Context) ([]models.Job, error) {
	var out []models.Job
	for _, job := range s.jobs {
		if !job.Expired {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (s *fakeJobStore) ListByOwner(_ context.Context, owner uuid.UUID) ([]models.Job, error) {
	var out []models.Job
	for _, job := range s.jobs {
		if job.PostedBy == owner {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (s *fakeJobStore) Save(_ context.Context, job *models.Job) error {
	j := *job
	s.jobs[j.ID] = &j
	return nil
}

func (s *fakeJobStore) DeleteOwned(_ context.Context, id, owner uuid.UUID) error {
	job, ok := s.jobs[id]
	if !ok || job.PostedBy != owner {
		return repository.ErrNotFound
	}
	delete(s.jobs, id)
	return nil
}

type fakeApplicationStore struct {
	apps map[uuid.UUID]*models.Application
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{apps: make(map[uuid.UUID]*models.Application)}
}

func (s *fakeApplicationStore) Create(_ context.Context, app *models.Application) error {
	a := *app
	s.apps[a.ID] = &a
	return nil
}

func (s *fakeApplicationStore) ListByEmployer(_ context.Context, employer uuid.UUID) ([]models.Application, error) {
	var out []models.Application
	for _, app := range s.apps {
		if app.EmployerID.User == employer {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (s *fakeApplicationStore) ListByApplicant(_ context.Context, applicant uuid.UUID) ([]models.Application, error) {
	var out []models.Application
	for _, app := range s.apps {
		if app.ApplicantID.User == applicant {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (s *fakeApplicationStore) DeleteOwned(_ context.Context, id, applicant uuid.UUID) error {
	app, ok := s.apps[id]
	if !ok || app.ApplicantID.User != applicant {
		return repository.ErrNotFound
	}
	delete(s.apps, id)
	return nil
}

type fakeUploader struct {
	fail    bool
	uploads int
}

func (u *fakeUploader) Upload(_ context.Context, filename, contentType string, file io.Reader) (*resumehost.Upload, error) {
	if u.fail {
		return nil, errors.New("host unreachable")
	}
	u.uploads++
	return &resumehost.Upload{
		PublicID: "res_" + filename,
		URL:      "https://resumes.example.com/" + filename,
	}, nil
}
