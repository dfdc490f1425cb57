package config

import (
	"context"

	cfg "github.com/Tomas-vilte/MateChat/internal/config"
	"github.com/Tomas-vilte/MateChat/internal/domain/models"
	"github.com/Tomas-vilte/MateChat/internal/i18n"
	"github.com/Tomas-vilte/MateChat/internal/ui"
	"github.com/urfave/cli/v3"
)

func newSetRepoCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-repo",
		ArgsUsage: "<owner/repo | github URL>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			repo, err := models.ParseRepoReference(cmd.Args().First())
			if err != nil {
				return err
			}

			config.DefaultRepo = repo.String()
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}

			ui.Success.Println(t.GetMessage("config.repo_updated", 0, map[string]interface{}{
				"Repo": repo.String(),
			}))
			return nil
		},
	}
}
