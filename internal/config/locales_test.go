package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLocaleConfig(t *testing.T) {
	tests := []struct {
		name string
		lang string
		want string
	}{
		{name: "english passes through", lang: LangEN, want: LangEN},
		{name: "spanish passes through", lang: LangES, want: LangES},
		{name: "unknown falls back to english", lang: "fr", want: LangEN},
		{name: "empty falls back to english", lang: "", want: LangEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetLocaleConfig(tt.lang))
		})
	}
}

func TestSupportedLanguages(t *testing.T) {
	assert.ElementsMatch(t, []string{LangEN, LangES}, SupportedLanguages())
}
