package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lms-service/internal/auth"
	"github.com/spec-kit/lms-service/internal/service"
	apperrors "github.com/spec-kit/lms-service/pkg/util"
)

// DashboardHandler exposes the role-branched dashboard endpoint.
type DashboardHandler struct {
	dashboards *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboardService}
}

// Get handles GET /api/dashboard.
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	dashboard, err := h.dashboards.For(c.Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"dashboard": dashboard}})
}
