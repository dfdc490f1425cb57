package ports

import (
	"context"

	"github.com/Tomas-vilte/MateChat/internal/domain/models"
)

// AnswerComposer convierte los registros obtenidos más la pregunta original
// en una respuesta en lenguaje natural vía un modelo de IA.
type AnswerComposer interface {
	Compose(ctx context.Context, question string, records []models.FetchedRecord) (string, error)
}
