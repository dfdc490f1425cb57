package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateChat/internal/config"
	"github.com/Tomas-vilte/MateChat/internal/domain/models"
	"github.com/Tomas-vilte/MateChat/internal/domain/ports"
	"github.com/Tomas-vilte/MateChat/internal/i18n"
	"github.com/Tomas-vilte/MateChat/internal/logger"
	"github.com/google/generative-ai-go/genai"
)

var _ ports.IntentClassifier = (*GeminiClassifier)(nil)

// GeminiClassifier delega la detección de intent al modelo y cae a la
// heurística ante cualquier fallo o respuesta no reconocida, así la
// clasificación nunca rompe un turno.
type GeminiClassifier struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	fallback ports.IntentClassifier
}

func NewGeminiClassifier(ctx context.Context, cfg *config.Config, trans *i18n.Translations, fallback ports.IntentClassifier) (*GeminiClassifier, error) {
	if fallback == nil {
		return nil, fmt.Errorf("el clasificador de fallback es requerido")
	}

	client, model, err := newGenerativeModel(ctx, cfg, trans)
	if err != nil {
		return nil, err
	}

	return &GeminiClassifier{
		client:   client,
		model:    model,
		fallback: fallback,
	}, nil
}

func (c *GeminiClassifier) Classify(ctx context.Context, question string) models.QueryIntent {
	// La heurística extrae los parámetros (límite, número de issue);
	// el modelo solo decide la acción.
	intent := c.fallback.Classify(ctx, question)

	resp, err := c.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(classifierPrompt, question)))
	if err != nil {
		logger.Warn(ctx, "el clasificador de IA falló, usando heurística", "error", err)
		return intent
	}

	action := models.Intent(strings.TrimSpace(strings.ToLower(formatResponse(resp))))
	if !action.IsValid() {
		logger.Warn(ctx, "acción no reconocida del clasificador de IA, usando heurística", "action", string(action))
		return intent
	}

	if action == models.IntentIssueDetail && intent.IssueNumber == 0 {
		// Sin número de issue el detalle no se puede pedir
		action = models.IntentIssues
	}

	intent.Action = action
	return intent
}
