package http

import (
	"log"

	"github.com/Maryncell/iabot-landing-page/internal/application"
	"github.com/Maryncell/iabot-landing-page/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type DemoHandler struct {
	service *application.DemoService
}

func NewDemoHandler(service *application.DemoService) *DemoHandler {
	return &DemoHandler{
		service: service,
	}
}

// Chat procesa un turno de la demo. El mismo endpoint atiende texto
// tipeado y clics en chips: un chip manda su Value como mensaje.
func (h *DemoHandler) Chat(c *fiber.Ctx) error {
	var req domain.DemoChatRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
		})
	}

	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message is required",
		})
	}

	response, err := h.service.ProcessTurn(req)
	if err != nil {
		log.Printf("Error processing demo turn: %v", err)
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(response)
}

type toggleRequest struct {
	SessionID *string `json:"sessionId,omitempty"`
	Enabled   bool    `json:"enabled"`
}

func (h *DemoHandler) Toggle(c *fiber.Ctx) error {
	var req toggleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
		})
	}

	response, err := h.service.ToggleDemo(req.SessionID, req.Enabled)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(response)
}

type resetRequest struct {
	SessionID string `json:"sessionId"`
}

func (h *DemoHandler) Reset(c *fiber.Ctx) error {
	var req resetRequest
	if err := c.BodyParser(&req); err != nil || req.SessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Session ID is required",
		})
	}

	session, err := h.service.ResetSession(req.SessionID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(session)
}

func (h *DemoHandler) GetSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Session ID is required",
		})
	}

	session := h.service.GetSession(sessionID)
	if session == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	return c.JSON(session)
}
