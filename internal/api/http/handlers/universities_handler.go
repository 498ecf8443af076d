package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lms-service/internal/api/dto"
	"github.com/spec-kit/lms-service/internal/service"
	apperrors "github.com/spec-kit/lms-service/pkg/util"
)

// UniversitiesHandler exposes partner-university endpoints.
type UniversitiesHandler struct {
	universities *service.UniversityService
}

// NewUniversitiesHandler constructs handler.
func NewUniversitiesHandler(universityService *service.UniversityService) *UniversitiesHandler {
	return &UniversitiesHandler{universities: universityService}
}

// List handles GET /api/universities.
func (h *UniversitiesHandler) List(c *fiber.Ctx) error {
	summaries, err := h.universities.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"universities": dto.NewUniversitySummaryResponses(summaries)}})
}

// Get handles GET /api/universities/:id.
func (h *UniversitiesHandler) Get(c *fiber.Ctx) error {
	university, err := h.universities.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"university": dto.NewUniversityResponse(university)}})
}

// Create handles POST /api/universities.
func (h *UniversitiesHandler) Create(c *fiber.Ctx) error {
	var req dto.UniversityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid JSON body", nil)
	}

	university, err := h.universities.Create(c.Context(), req.Name, req.Country)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"university": dto.NewUniversityResponse(university)}})
}

// Update handles PUT /api/universities/:id.
func (h *UniversitiesHandler) Update(c *fiber.Ctx) error {
	var req dto.UniversityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid JSON body", nil)
	}

	university, err := h.universities.Update(c.Context(), c.Params("id"), req.Name, req.Country)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"university": dto.NewUniversityResponse(university)}})
}

// Delete handles DELETE /api/universities/:id.
func (h *UniversitiesHandler) Delete(c *fiber.Ctx) error {
	if err := h.universities.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
