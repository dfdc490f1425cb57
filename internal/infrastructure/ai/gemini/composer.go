package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateChat/internal/config"
	domainErrors "github.com/Tomas-vilte/MateChat/internal/domain/errors"
	"github.com/Tomas-vilte/MateChat/internal/domain/models"
	"github.com/Tomas-vilte/MateChat/internal/domain/ports"
	"github.com/Tomas-vilte/MateChat/internal/i18n"
	"github.com/google/generative-ai-go/genai"
)

var _ ports.AnswerComposer = (*GeminiComposer)(nil)

// GeminiComposer serializa los registros obtenidos de GitHub y se los pasa
// a Gemini junto con la pregunta original. Una llamada de red por turno.
type GeminiComposer struct {
	client *genai.Client
	model  *genai.GenerativeModel
	lang   string
	trans  *i18n.Translations
}

func NewGeminiComposer(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (*GeminiComposer, error) {
	client, model, err := newGenerativeModel(ctx, cfg, trans)
	if err != nil {
		return nil, err
	}

	return &GeminiComposer{
		client: client,
		model:  model,
		lang:   cfg.Language,
		trans:  trans,
	}, nil
}

// Compose devuelve el texto generado tal cual. Con cero registros responde
// directo con la frase de "sin resultados", sin gastar una llamada al modelo.
func (s *GeminiComposer) Compose(ctx context.Context, question string, records []models.FetchedRecord) (string, error) {
	if len(records) == 0 {
		return s.trans.GetMessage("chat.empty_results", 0, nil), nil
	}

	prompt, err := s.buildPrompt(question, records)
	if err != nil {
		return "", domainErrors.NewCompletionError("gemini", err)
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", domainErrors.NewCompletionError("gemini", err)
	}

	answer := strings.TrimSpace(formatResponse(resp))
	if answer == "" {
		return "", domainErrors.NewCompletionError("gemini", fmt.Errorf("respuesta vacía del modelo"))
	}

	return answer, nil
}

func (s *GeminiComposer) buildPrompt(question string, records []models.FetchedRecord) (string, error) {
	serialized, err := serializeRecords(records)
	if err != nil {
		return "", err
	}

	template := composerPromptEN
	if s.lang == config.LangES {
		template = composerPromptES
	}

	return fmt.Sprintf(template, question, len(records), serialized), nil
}

// serializeRecords arma la representación compacta que ve el modelo: una
// línea JSON por registro, los campos en cero omitidos.
func serializeRecords(records []models.FetchedRecord) (string, error) {
	var b strings.Builder
	for _, record := range records {
		line, err := json.Marshal(record)
		if err != nil {
			return "", fmt.Errorf("error serializando registro: %w", err)
		}
		b.Write(line)
		b.WriteString("\n")
	}
	return b.String(), nil
}
