package ports

import (
	"context"

	"github.com/Tomas-vilte/MateChat/internal/domain/models"
)

// IntentClassifier mapea una pregunta en lenguaje natural a un QueryIntent.
// La estrategia es intercambiable: heurística por keywords o un modelo de IA.
// Una implementación nunca debe fallar con entrada no vacía: ante
// ambigüedad devuelve IntentSummary para mantener viva la conversación.
type IntentClassifier interface {
	Classify(ctx context.Context, question string) models.QueryIntent
}
