package http

import (
	"log"

	"github.com/Maryncell/iabot-landing-page/internal/application"
	"github.com/Maryncell/iabot-landing-page/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	service *application.CheckoutService
}

func NewCheckoutHandler(service *application.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
	}
}

// CreateSession crea la sesión de pago hospedado. El front redirige al
// visitante con el ID devuelto; acá no vuelve ningún dato del pago.
func (h *CheckoutHandler) CreateSession(c *fiber.Ctx) error {
	var req domain.CreateCheckoutSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
		})
	}

	response, err := h.service.CreateSession(c.Context(), req)
	if err != nil {
		log.Printf("Error creating checkout session: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(response)
}
