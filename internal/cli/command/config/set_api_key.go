package config

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/MateChat/internal/config"
	domainErrors "github.com/Tomas-vilte/MateChat/internal/domain/errors"
	"github.com/Tomas-vilte/MateChat/internal/i18n"
	"github.com/Tomas-vilte/MateChat/internal/ui"
	"github.com/urfave/cli/v3"
)

func newSetAPIKeyCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-api-key",
		ArgsUsage: "<gemini-api-key>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			key := cmd.Args().First()
			if key == "" {
				return domainErrors.NewInvalidInputError()
			}

			config.SetGeminiAPIKey(key)
			if err := cfg.SaveConfig(config); err != nil {
				return fmt.Errorf("error guardando la API key: %w", err)
			}

			ui.Success.Println(t.GetMessage("config.api_key_updated", 0, nil))
			return nil
		},
	}
}
