package config

import (
	cfg "github.com/Tomas-vilte/MateChat/internal/config"
	"github.com/Tomas-vilte/MateChat/internal/i18n"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (f *ConfigCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			newShowCommand(t, config),
			newSetLangCommand(t, config),
			newSetAPIKeyCommand(t, config),
			newSetTokenCommand(t, config),
			newSetRepoCommand(t, config),
		},
	}
}
