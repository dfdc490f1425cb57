package server

import (
	"errors"

	"github.com/Tomas-vilte/MateChat/internal/domain/ports"
	"github.com/Tomas-vilte/MateChat/internal/i18n"
	"github.com/gofiber/fiber/v2"
)

// Server expone el chat por HTTP: la API JSON más la página embebida que
// renderiza la conversación en el navegador.
type Server struct {
	app *fiber.App
}

func New(svc ports.ChatService, trans *i18n.Translations) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "matechat",
		DisableStartupMessage: true,
		// Los errores salen como JSON para que la página los pueda mostrar
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
			return c.Status(code).JSON(fiber.Map{"message": err.Error()})
		},
	})

	v1 := app.Group("/api/v1")
	NewChatHandler(svc, trans).Register(v1)

	app.Get("/", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(chatPage)
	})

	return &Server{app: app}
}

// App expone la app de fiber para los tests
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}
