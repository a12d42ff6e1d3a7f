package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobboard/internal/dto"
	"jobboard/internal/identity"
	"jobboard/internal/services"
)

type JobHandler struct {
	jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// GetAll handles GET /job/getall — every non-expired posting, no auth.
func (h *JobHandler) GetAll(c *fiber.Ctx) error {
	jobs, err := h.jobs.ListOpen(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to fetch jobs",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"jobs":    jobs,
	})
}

// Post handles POST /job/post.
func (h *JobHandler) Post(c *fiber.Ctx) error {
	user, err := identity.Current(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	job, err := h.jobs.Create(c.Context(), user.ID, &req)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: ve.Message,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to post job",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Job posted",
		"job":     job,
	})
}

// GetMyJobs handles GET /job/getmyjobs.
func (h *JobHandler) GetMyJobs(c *fiber.Ctx) error {
	user, err := identity.Current(c)
	if err != nil {
		return unauthorized(c)
	}

	myJobs, err := h.jobs.ListMine(c.Context(), user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to fetch jobs",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"myJobs":  myJobs,
	})
}

// Update handles PUT /job/update/:id.
func (h *JobHandler) Update(c *fiber.Ctx) error {
	user, err := identity.Current(c)
	if err != nil {
		return unauthorized(c)
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	job, err := h.jobs.Update(c.Context(), user.ID, jobID, &req)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: ve.Message,
			})
		case errors.Is(err, services.ErrJobNotFound):
			return jobNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to update job",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Job updated",
		"job":     job,
	})
}

// Delete handles DELETE /job/delete/:id.
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	user, err := identity.Current(c)
	if err != nil {
		return unauthorized(c)
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	if err := h.jobs.Delete(c.Context(), user.ID, jobID); err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			return jobNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to delete job",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Job deleted",
	})
}

// GetSingle handles GET /job/:id. A malformed id is a client input error
// (400), a well-formed but unknown id is 404.
func (h *JobHandler) GetSingle(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	job, err := h.jobs.GetByID(c.Context(), jobID)
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			return jobNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to fetch job",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"job":     job,
	})
}
