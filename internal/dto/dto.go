package dto

// ErrorResponse is the uniform failure shape for every endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=32"`
	Role     string `json:"role" validate:"required,oneof='Job Seeker' Employer"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof='Job Seeker' Employer"`
}

// JobRequest is used by both create and update; updates are replace-style
// and run the same validation. Expired is honored on update only.
type JobRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=30"`
	Description string `json:"description" validate:"required,min=10,max=500"`
	Category    string `json:"category" validate:"required"`
	Country     string `json:"country" validate:"required"`
	City        string `json:"city" validate:"required"`
	Location    string `json:"location" validate:"required,min=20"`
	FixedSalary *int64 `json:"fixedSalary"`
	SalaryFrom  *int64 `json:"salaryFrom"`
	SalaryTo    *int64 `json:"salaryTo"`
	Expired     *bool  `json:"expired"`
}

// ApplicationRequest carries the multipart form fields; the resume file
// travels separately.
type ApplicationRequest struct {
	Name        string `form:"name" validate:"required,min=3,max=30"`
	Email       string `form:"email" validate:"required,email"`
	CoverLetter string `form:"coverLetter" validate:"required"`
	Phone       string `form:"phone" validate:"required"`
	Address     string `form:"address" validate:"required"`
	JobID       string `form:"jobId"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	DB        string `json:"db"`
	Timestamp string `json:"timestamp"`
}
