package gemini

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateChat/internal/config"
	"github.com/Tomas-vilte/MateChat/internal/domain/ports"
	"github.com/Tomas-vilte/MateChat/internal/i18n"
)

// GeminiProviderFactory implementa AIProviderFactory para Gemini
type GeminiProviderFactory struct{}

// NewGeminiProviderFactory crea una nueva factory para Gemini
func NewGeminiProviderFactory() *GeminiProviderFactory {
	return &GeminiProviderFactory{}
}

// CreateComposer crea el servicio que compone respuestas con Gemini
func (f *GeminiProviderFactory) CreateComposer(
	ctx context.Context,
	cfg *config.Config,
	trans *i18n.Translations,
) (ports.AnswerComposer, error) {
	return NewGeminiComposer(ctx, cfg, trans)
}

// CreateIntentClassifier crea el clasificador de intents respaldado por Gemini
func (f *GeminiProviderFactory) CreateIntentClassifier(
	ctx context.Context,
	cfg *config.Config,
	trans *i18n.Translations,
	fallback ports.IntentClassifier,
) (ports.IntentClassifier, error) {
	return NewGeminiClassifier(ctx, cfg, trans, fallback)
}

// ValidateConfig valida la configuración de Gemini
func (f *GeminiProviderFactory) ValidateConfig(cfg *config.Config) error {
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("gemini API key es requerida")
	}
	return nil
}

// Name retorna el nombre del proveedor
func (f *GeminiProviderFactory) Name() string {
	return "gemini"
}
