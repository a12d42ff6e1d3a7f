package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"jobboard/internal/dto"
)

type Pinger interface {
	Ping() error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "up"
	status := fiber.StatusOK
	if err := h.db.Ping(); err != nil {
		dbStatus = "down"
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(dto.HealthResponse{
		Status:    "ok",
		DB:        dbStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
