package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lms-service/internal/api/dto"
	"github.com/spec-kit/lms-service/internal/auth"
	"github.com/spec-kit/lms-service/internal/service"
	apperrors "github.com/spec-kit/lms-service/pkg/util"
)

// EnrollmentsHandler exposes enrollment and roster endpoints.
type EnrollmentsHandler struct {
	enrollments *service.EnrollmentService
}

// NewEnrollmentsHandler constructs handler.
func NewEnrollmentsHandler(enrollmentService *service.EnrollmentService) *EnrollmentsHandler {
	return &EnrollmentsHandler{enrollments: enrollmentService}
}

// Enroll handles POST /api/courses/:id/enroll.
func (h *EnrollmentsHandler) Enroll(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	enrollment, err := h.enrollments.Enroll(c.Context(), claims, c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"enrollment": dto.NewEnrollmentResponse(enrollment)}})
}

// Drop handles DELETE /api/courses/:id/enroll.
func (h *EnrollmentsHandler) Drop(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.enrollments.Drop(c.Context(), claims, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// MyEnrollments handles GET /api/enrollments.
func (h *EnrollmentsHandler) MyEnrollments(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	enrollments, err := h.enrollments.MyEnrollments(c.Context(), claims)
	if err != nil {
		return err
	}

	responses := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		responses = append(responses, dto.NewEnrollmentResponse(&enrollments[i]))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"enrollments": responses}})
}

// Roster handles GET /api/courses/:id/students.
func (h *EnrollmentsHandler) Roster(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	roster, err := h.enrollments.Roster(c.Context(), claims, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"students": dto.NewRosterResponses(roster)}})
}
