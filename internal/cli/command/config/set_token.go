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

func newSetTokenCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-token",
		ArgsUsage: "<github-token>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			token := cmd.Args().First()
			if token == "" {
				return domainErrors.NewInvalidInputError()
			}

			config.SetGitHubToken(token)
			if err := cfg.SaveConfig(config); err != nil {
				return fmt.Errorf("error guardando el token: %w", err)
			}

			ui.Success.Println(t.GetMessage("config.token_updated", 0, nil))
			return nil
		},
	}
}
