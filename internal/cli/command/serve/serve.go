package serve

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/MateChat/internal/config"
	"github.com/Tomas-vilte/MateChat/internal/i18n"
	"github.com/Tomas-vilte/MateChat/internal/infrastructure/di"
	"github.com/Tomas-vilte/MateChat/internal/server"
	"github.com/Tomas-vilte/MateChat/internal/ui"
	"github.com/urfave/cli/v3"
)

type ServeCommandFactory struct {
	container *di.Container
}

func NewServeCommandFactory(container *di.Container) *ServeCommandFactory {
	return &ServeCommandFactory{container: container}
}

func (f *ServeCommandFactory) CreateCommand(t *i18n.Translations, _ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: t.GetMessage("serve_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "repo",
				Aliases: []string{"r"},
				Usage:   t.GetMessage("flag.repo_usage", 0, nil),
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   t.GetMessage("flag.port_usage", 0, nil),
				Value:   8080,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			repo, err := f.container.ResolveRepo(cmd.String("repo"))
			if err != nil {
				return err
			}

			chatService, err := f.container.CreateChatService(ctx, repo)
			if err != nil {
				return fmt.Errorf("%s: %w", t.GetMessage("error.chat_service_creation", 0, nil), err)
			}

			port := cmd.Int("port")
			ui.Info.Println(t.GetMessage("server.listening", 0, map[string]interface{}{
				"Port": port,
			}))

			srv := server.New(chatService, t)
			return srv.Listen(fmt.Sprintf(":%d", port))
		},
	}
}
