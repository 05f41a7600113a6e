package http

import (
	"log"

	"github.com/Maryncell/iabot-landing-page/internal/application"
	"github.com/Maryncell/iabot-landing-page/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	service *application.ContactService
}

func NewContactHandler(service *application.ContactService) *ContactHandler {
	return &ContactHandler{
		service: service,
	}
}

func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req domain.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
		})
	}

	id, err := h.service.Create(c.Context(), req)
	if err != nil {
		log.Printf("Error creating contact: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Consulta recibida, te contactamos a la brevedad",
		"id":      id,
	})
}

func (h *ContactHandler) List(c *fiber.Ctx) error {
	contacts, err := h.service.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(contacts)
}

func (h *ContactHandler) UpdateEstado(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid contact ID",
		})
	}

	var body struct {
		Estado domain.EstadoFormulario `json:"estado"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
		})
	}

	if err := h.service.UpdateEstado(c.Context(), int64(id), body.Estado); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Estado actualizado"})
}
