package services

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRole         = errors.New("invalid role")
	ErrJobNotFound         = errors.New("job not found")
	ErrJobExpired          = errors.New("job no longer accepts applications")
	ErrApplicationNotFound = errors.New("application not found")
	ErrResumeUpload        = errors.New("failed to upload resume")
)

// ValidationError carries the client-facing message for a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// invalid maps the first failed validator rule to the message the API has
// always used for it.
func invalid(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return &ValidationError{Message: "All fields required"}
		case "email":
			return &ValidationError{Message: "Invalid email"}
		case "min":
			return &ValidationError{Message: "Min " + fe.Param() + " chars"}
		case "max":
			return &ValidationError{Message: "Max " + fe.Param() + " chars"}
		case "oneof":
			return &ValidationError{Message: "Invalid role"}
		}
	}
	return &ValidationError{Message: "Invalid request"}
}
