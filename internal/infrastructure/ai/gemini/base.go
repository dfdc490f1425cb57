package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateChat/internal/config"
	"github.com/Tomas-vilte/MateChat/internal/i18n"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// newGenerativeModel crea el cliente de Gemini con el modelo configurado.
func newGenerativeModel(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (*genai.Client, *genai.GenerativeModel, error) {
	if cfg.GeminiAPIKey == "" {
		msg := trans.GetMessage("error.missing_api_key", 0, nil)
		return nil, nil, fmt.Errorf("%s", msg)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, nil, fmt.Errorf("error al crear el cliente de Gemini: %w", err)
	}

	modelName := string(cfg.AIConfig.Model)
	if modelName == "" {
		modelName = string(config.DefaultModelForAI(config.AIGemini))
	}

	return client, client.GenerativeModel(modelName), nil
}

// formatResponse concatena las partes de texto de los candidatos.
func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || resp.Candidates == nil {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				formattedContent.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return formattedContent.String()
}
