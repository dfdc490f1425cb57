package config

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/MateChat/internal/config"
	"github.com/Tomas-vilte/MateChat/internal/i18n"
	"github.com/Tomas-vilte/MateChat/internal/ui"
	"github.com/urfave/cli/v3"
)

func newSetLangCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-lang",
		ArgsUsage: "<en|es>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			lang := cmd.Args().First()
			if cfg.GetLocaleConfig(lang) != lang {
				return fmt.Errorf("idioma '%s' no soportado", lang)
			}

			config.Language = lang
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}

			ui.Success.Println(t.GetMessage("config.lang_updated", 0, map[string]interface{}{
				"Lang": lang,
			}))
			return nil
		},
	}
}
