package api

import (
	"github.com/gofiber/fiber/v3"

	"termguard/internal/db"
	"termguard/internal/models"
)

// HealthHandler reports service liveness and readiness.
type HealthHandler struct {
	db *db.DB
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(database *db.DB) *HealthHandler {
	return &HealthHandler{db: database}
}

// Live always succeeds while the process serves requests.
func (h *HealthHandler) Live(c fiber.Ctx) error {
	return c.SendString("ok")
}

// Ready checks database connectivity.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	resp := models.ReadyResponse{Ready: true, Database: "ok"}
	if err := h.db.Ping(c.Context()); err != nil {
		resp.Ready = false
		resp.Database = err.Error()
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
