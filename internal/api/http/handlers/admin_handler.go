package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/lms-service/internal/persistence"
	apperrors "github.com/spec-kit/lms-service/pkg/util"
)

// AdminHandler hosts destructive maintenance endpoints.
type AdminHandler struct {
	postgres   *persistence.Postgres
	logger     *zap.Logger
	production bool
}

// NewAdminHandler constructs handler.
func NewAdminHandler(postgres *persistence.Postgres, logger *zap.Logger, production bool) *AdminHandler {
	return &AdminHandler{postgres: postgres, logger: logger, production: production}
}

// Reseed handles POST /api/admin/reseed. Refused outright in production:
// the role gate is not enough protection for a catalog wipe.
func (h *AdminHandler) Reseed(c *fiber.Ctx) error {
	if h.production {
		return apperrors.NewForbidden("reseeding is disabled in production")
	}

	if err := persistence.SeedSampleData(c.Context(), h.postgres.PoolHandle(), h.logger); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "sample data seeded"}})
}
