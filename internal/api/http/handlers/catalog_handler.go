package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lms-service/internal/api/dto"
	"github.com/spec-kit/lms-service/internal/service"
)

// CatalogHandler exposes the public lookup lists.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalogService}
}

// ListTextbooks handles GET /api/textbooks.
func (h *CatalogHandler) ListTextbooks(c *fiber.Ctx) error {
	textbooks, err := h.catalog.ListTextbooks(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"textbooks": dto.NewTextbookResponses(textbooks)}})
}

// ListTopics handles GET /api/topics.
func (h *CatalogHandler) ListTopics(c *fiber.Ctx) error {
	topics, err := h.catalog.ListTopics(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"topics": dto.NewTopicResponses(topics)}})
}
