package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lms-service/internal/api/dto"
	"github.com/spec-kit/lms-service/internal/auth"
	"github.com/spec-kit/lms-service/internal/domain"
	"github.com/spec-kit/lms-service/internal/repository"
	"github.com/spec-kit/lms-service/internal/service"
	apperrors "github.com/spec-kit/lms-service/pkg/util"
)

// CoursesHandler exposes the course catalog and its nested content and
// instructor-assignment endpoints.
type CoursesHandler struct {
	courses *service.CourseService
}

// NewCoursesHandler constructs handler.
func NewCoursesHandler(courseService *service.CourseService) *CoursesHandler {
	return &CoursesHandler{courses: courseService}
}

// List handles GET /api/courses.
func (h *CoursesHandler) List(c *fiber.Ctx) error {
	filter := repository.CourseFilter{
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
	}
	if universityID := c.Query("university_id"); universityID != "" {
		filter.UniversityID = &universityID
	}
	if raw := c.Query("program_type"); raw != "" {
		programType, ok := domain.ParseProgramType(raw)
		if !ok {
			return apperrors.NewValidationError("invalid program type", map[string]any{"program_type": raw})
		}
		filter.ProgramType = &programType
	}
	if term := c.Query("q"); term != "" {
		filter.SearchTerm = &term
	}

	courses, err := h.courses.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"courses": dto.NewCourseResponses(courses)}})
}

// Get handles GET /api/courses/:id.
func (h *CoursesHandler) Get(c *fiber.Ctx) error {
	course, err := h.courses.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"course": dto.NewCourseResponse(course)}})
}

// Create handles POST /api/courses.
func (h *CoursesHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid JSON body", nil)
	}

	course, err := h.courses.Create(c.Context(), claims, courseInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"course": dto.NewCourseResponse(course)}})
}

// Update handles PUT /api/courses/:id.
func (h *CoursesHandler) Update(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid JSON body", nil)
	}

	course, err := h.courses.Update(c.Context(), claims, c.Params("id"), courseInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"course": dto.NewCourseResponse(course)}})
}

// Delete handles DELETE /api/courses/:id.
func (h *CoursesHandler) Delete(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.courses.Delete(c.Context(), claims, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// AssignInstructor handles POST /api/courses/:id/instructors.
func (h *CoursesHandler) AssignInstructor(c *fiber.Ctx) error {
	var req dto.AssignInstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid JSON body", nil)
	}
	if req.InstructorID == "" {
		return apperrors.NewValidationError("instructor_id required", nil)
	}

	if err := h.courses.AssignInstructor(c.Context(), c.Params("id"), req.InstructorID); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"message": "instructor assigned"}})
}

// RemoveInstructor handles DELETE /api/courses/:id/instructors/:instructorId.
func (h *CoursesHandler) RemoveInstructor(c *fiber.Ctx) error {
	if err := h.courses.RemoveInstructor(c.Context(), c.Params("id"), c.Params("instructorId")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListContents handles GET /api/courses/:id/contents.
func (h *CoursesHandler) ListContents(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	contents, err := h.courses.ListContents(c.Context(), claims, c.Params("id"))
	if err != nil {
		return err
	}

	responses := make([]dto.ContentResponse, 0, len(contents))
	for i := range contents {
		responses = append(responses, dto.NewContentResponse(&contents[i]))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"contents": responses}})
}

// AddContent handles POST /api/courses/:id/contents.
func (h *CoursesHandler) AddContent(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ContentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid JSON body", nil)
	}

	content, err := h.courses.AddContent(c.Context(), claims, c.Params("id"), req.Type, req.Body)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"content": dto.NewContentResponse(content)}})
}

// DeleteContent handles DELETE /api/courses/:id/contents/:contentId.
func (h *CoursesHandler) DeleteContent(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.courses.DeleteContent(c.Context(), claims, c.Params("id"), c.Params("contentId")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func courseInput(req dto.CourseRequest) service.CourseInput {
	return service.CourseInput{
		Name:          req.Name,
		Description:   req.Description,
		ProgramType:   req.ProgramType,
		DurationWeeks: req.DurationWeeks,
		UniversityID:  req.UniversityID,
		TextbookID:    req.TextbookID,
	}
}
