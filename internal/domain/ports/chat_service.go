package ports

import (
	"context"

	"github.com/Tomas-vilte/MateChat/internal/domain/models"
)

// ChatService orquesta un turno de conversación: router → fetcher → composer.
type ChatService interface {
	// HandleTurn procesa una pregunta y devuelve la respuesta final. Los
	// fallos del fetcher se devuelven como texto legible, no como error:
	// el loop conversacional no termina por un turno malo.
	HandleTurn(ctx context.Context, question string) (string, error)

	// Transcript devuelve una copia de los turnos de la sesión.
	Transcript() []models.ConversationTurn

	// Reset limpia la transcripción al cerrar la sesión.
	Reset()
}
