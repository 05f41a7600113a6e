package http

import (
	"log"

	"github.com/Maryncell/iabot-landing-page/internal/application"
	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	service *application.CatalogService
}

func NewCatalogHandler(service *application.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

func (h *CatalogHandler) GetPlans(c *fiber.Ctx) error {
	plans, err := h.service.GetPlans(c.Context())
	if err != nil {
		log.Printf("Error listing plans: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "No se pudieron cargar los planes",
		})
	}

	return c.JSON(plans)
}

func (h *CatalogHandler) GetFeatures(c *fiber.Ctx) error {
	features, err := h.service.GetFeatures(c.Context())
	if err != nil {
		log.Printf("Error listing features: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "No se pudieron cargar las features",
		})
	}

	return c.JSON(features)
}
