package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobboard/internal/dto"
	"jobboard/internal/identity"
	"jobboard/internal/services"
)

// allowedResumeTypes is the accepted media-type set for hosted resumes.
var allowedResumeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

type ApplicationHandler struct {
	apps *services.ApplicationService
}

func NewApplicationHandler(apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

// Post handles POST /application/post — multipart with a `resume` file field.
func (h *ApplicationHandler) Post(c *fiber.Ctx) error {
	user, err := identity.Current(c)
	if err != nil {
		return unauthorized(c)
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Resume required",
		})
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedResumeTypes[contentType] {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid file format",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Application failed",
		})
	}
	defer src.Close()

	req := dto.ApplicationRequest{
		Name:        c.FormValue("name"),
		Email:       c.FormValue("email"),
		CoverLetter: c.FormValue("coverLetter"),
		Phone:       c.FormValue("phone"),
		Address:     c.FormValue("address"),
		JobID:       c.FormValue("jobId"),
	}

	app, err := h.apps.Submit(c.Context(), user, &req, file.Filename, contentType, src)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: ve.Message,
			})
		case errors.Is(err, services.ErrJobNotFound):
			return jobNotFound(c)
		case errors.Is(err, services.ErrJobExpired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: "Job no longer accepts applications",
			})
		case errors.Is(err, services.ErrResumeUpload):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Success: false, Message: "Failed to upload resume",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Application failed",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":     true,
		"message":     "Application submitted",
		"application": app,
	})
}

// EmployerGetAll handles GET /application/employer/getall.
func (h *ApplicationHandler) EmployerGetAll(c *fiber.Ctx) error {
	user, err := identity.Current(c)
	if err != nil {
		return unauthorized(c)
	}

	applications, err := h.apps.ListForEmployer(c.Context(), user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to fetch applications",
		})
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"applications": applications,
	})
}

// JobseekerGetAll handles GET /application/jobseeker/getall.
func (h *ApplicationHandler) JobseekerGetAll(c *fiber.Ctx) error {
	user, err := identity.Current(c)
	if err != nil {
		return unauthorized(c)
	}

	applications, err := h.apps.ListForSeeker(c.Context(), user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to fetch applications",
		})
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"applications": applications,
	})
}

// Delete handles DELETE /application/delete/:id. Only the submitting seeker
// may withdraw; a second delete of the same id is a 404.
func (h *ApplicationHandler) Delete(c *fiber.Ctx) error {
	user, err := identity.Current(c)
	if err != nil {
		return unauthorized(c)
	}

	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	if err := h.apps.Withdraw(c.Context(), user.ID, appID); err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Message: "Application not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to delete application",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Application deleted",
	})
}
