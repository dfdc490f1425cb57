package server

import (
	"errors"

	domainErrors "github.com/Tomas-vilte/MateChat/internal/domain/errors"
	"github.com/Tomas-vilte/MateChat/internal/domain/ports"
	"github.com/Tomas-vilte/MateChat/internal/i18n"
	"github.com/gofiber/fiber/v2"
)

// ChatRequest es el cuerpo de POST /api/v1/chat
type ChatRequest struct {
	Question string `json:"question"`
}

// ChatHandler conecta HTTP con el servicio de chat
type ChatHandler struct {
	svc   ports.ChatService
	trans *i18n.Translations
}

func NewChatHandler(svc ports.ChatService, trans *i18n.Translations) *ChatHandler {
	return &ChatHandler{svc: svc, trans: trans}
}

// Register monta los endpoints de chat en el grupo de rutas recibido
func (h *ChatHandler) Register(r fiber.Router) {
	r.Post("/chat", h.chat)
	r.Get("/transcript", h.transcript)
	r.Delete("/transcript", h.reset)
}

func (h *ChatHandler) chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, h.trans.GetMessage("server.invalid_body", 0, nil))
	}

	answer, err := h.svc.HandleTurn(c.UserContext(), req.Question)
	if err != nil {
		var invalid *domainErrors.InvalidInputError
		if errors.As(err, &invalid) {
			return fiber.NewError(fiber.StatusBadRequest, h.trans.GetMessage("server.question_required", 0, nil))
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"answer": answer,
	})
}

func (h *ChatHandler) transcript(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"turns": h.svc.Transcript(),
	})
}

func (h *ChatHandler) reset(c *fiber.Ctx) error {
	h.svc.Reset()
	return c.SendStatus(fiber.StatusNoContent)
}
