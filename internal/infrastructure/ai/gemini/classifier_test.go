package gemini

import (
	"context"
	"testing"

	"github.com/Tomas-vilte/MateChat/internal/config"
	"github.com/Tomas-vilte/MateChat/internal/i18n"
	"github.com/Tomas-vilte/MateChat/internal/services/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiClassifier_RequiresFallback(t *testing.T) {
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	_, err = NewGeminiClassifier(context.Background(), &config.Config{GeminiAPIKey: "key"}, trans, nil)

	assert.Error(t, err)
}

func TestNewGeminiClassifier_RequiresAPIKey(t *testing.T) {
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	fallback := routing.NewHeuristicClassifier(30)

	_, err = NewGeminiClassifier(context.Background(), &config.Config{}, trans, fallback)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "set-api-key")
}

func TestNewGeminiComposer_RequiresAPIKey(t *testing.T) {
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	_, err = NewGeminiComposer(context.Background(), &config.Config{}, trans)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "set-api-key")
}
