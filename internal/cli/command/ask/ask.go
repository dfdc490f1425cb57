package ask

import (
	"context"
	"fmt"
	"strings"

	cfg "github.com/Tomas-vilte/MateChat/internal/config"
	domainErrors "github.com/Tomas-vilte/MateChat/internal/domain/errors"
	"github.com/Tomas-vilte/MateChat/internal/i18n"
	"github.com/Tomas-vilte/MateChat/internal/infrastructure/di"
	"github.com/Tomas-vilte/MateChat/internal/ui"
	"github.com/urfave/cli/v3"
)

type AskCommandFactory struct {
	container *di.Container
}

func NewAskCommandFactory(container *di.Container) *AskCommandFactory {
	return &AskCommandFactory{container: container}
}

func (f *AskCommandFactory) CreateCommand(t *i18n.Translations, _ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "ask",
		Aliases:   []string{"a"},
		Usage:     t.GetMessage("ask_command_usage", 0, nil),
		ArgsUsage: "<question>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "repo",
				Aliases: []string{"r"},
				Usage:   t.GetMessage("flag.repo_usage", 0, nil),
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   t.GetMessage("flag.limit_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			question := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
			if question == "" {
				return domainErrors.NewInvalidInputError()
			}

			repo, err := f.container.ResolveRepo(cmd.String("repo"))
			if err != nil {
				return err
			}

			if n := cmd.Int("limit"); n > 0 && int(n) <= 100 {
				f.container.GetConfig().ResultLimit = int(n)
			}

			chatService, err := f.container.CreateChatService(ctx, repo)
			if err != nil {
				return fmt.Errorf("%s: %w", t.GetMessage("error.chat_service_creation", 0, nil), err)
			}

			spinner := ui.NewSmartSpinner(t.GetMessage("chat.thinking", 0, map[string]interface{}{
				"Repo": repo.String(),
			}))
			spinner.Start()

			answer, err := chatService.HandleTurn(ctx, question)
			if err != nil {
				spinner.Error(err.Error())
				return err
			}

			spinner.Success(t.GetMessage("chat.answer_ready", 0, nil))
			fmt.Println()
			fmt.Println(answer)
			return nil
		},
	}
}
