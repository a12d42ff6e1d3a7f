package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"jobboard/internal/credentials"
	"jobboard/internal/dto"
	"jobboard/internal/models"
	"jobboard/internal/repository"
)

// UserService is the account directory: registration, login and lookup.
type UserService struct {
	users    repository.UserStore
	validate *validator.Validate
}

func NewUserService(users repository.UserStore) *UserService {
	return &UserService{
		users:    users,
		validate: validator.New(),
	}
}

func (s *UserService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, invalid(err)
	}

	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	user, err := models.NewUser(req.Name, req.Email, req.Phone, req.Password, models.Role(req.Role))
	if err != nil {
		return nil, fmt.Errorf("build user: %w", err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the password before the role so that a role mismatch never
// confirms whether an email exists; unknown email and wrong password are the
// same generic failure.
func (s *UserService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, invalid(err)
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !credentials.CheckPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	if user.Role != models.Role(req.Role) {
		return nil, ErrInvalidRole
	}
	return user, nil
}
