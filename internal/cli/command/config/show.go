package config

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/MateChat/internal/config"
	"github.com/Tomas-vilte/MateChat/internal/i18n"
	"github.com/Tomas-vilte/MateChat/internal/ui"
	"github.com/urfave/cli/v3"
)

func newShowCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			notSet := t.GetMessage("config.not_set", 0, nil)

			ui.Info.Println(t.GetMessage("config.show_title", 0, nil))
			fmt.Printf("  language:     %s\n", config.Language)
			fmt.Printf("  default_repo: %s\n", valueOr(config.DefaultRepo, notSet))
			fmt.Printf("  result_limit: %d\n", config.ResultLimit)
			fmt.Printf("  classifier:   %s\n", config.Classifier)
			fmt.Printf("  active_ai:    %s (%s)\n", config.AIConfig.ActiveAI, config.AIConfig.Model)
			fmt.Printf("  gemini_key:   %s\n", maskSecret(config.GeminiAPIKey, notSet))
			fmt.Printf("  github_token: %s\n", maskSecret(config.GitHubToken, notSet))
			return nil
		},
	}
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// maskSecret muestra apenas el principio del secreto: los tokens nunca se
// imprimen ni loguean completos.
func maskSecret(secret, notSet string) string {
	if secret == "" {
		return notSet
	}
	if len(secret) <= 4 {
		return "****"
	}
	return secret[:4] + "****"
}
