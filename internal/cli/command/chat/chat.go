package chat

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	cfg "github.com/Tomas-vilte/MateChat/internal/config"
	"github.com/Tomas-vilte/MateChat/internal/i18n"
	"github.com/Tomas-vilte/MateChat/internal/infrastructure/di"
	"github.com/Tomas-vilte/MateChat/internal/ui"
	"github.com/urfave/cli/v3"
)

type ChatCommandFactory struct {
	container *di.Container
}

func NewChatCommandFactory(container *di.Container) *ChatCommandFactory {
	return &ChatCommandFactory{container: container}
}

func (f *ChatCommandFactory) CreateCommand(t *i18n.Translations, _ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "chat",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("chat_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "repo",
				Aliases: []string{"r"},
				Usage:   t.GetMessage("flag.repo_usage", 0, nil),
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

			ui.Info.Printf("%s %s\n", ui.ChatEmoji, t.GetMessage("chat.welcome", 0, map[string]interface{}{
				"Repo": repo.String(),
			}))

			promptLabel := t.GetMessage("chat.prompt_label", 0, nil)
			scanner := bufio.NewScanner(os.Stdin)

			for {
				ui.Accent.Printf("%s > ", promptLabel)
				if !scanner.Scan() {
					break
				}

				question := strings.TrimSpace(scanner.Text())
				if question == "" {
					continue
				}
				if question == "exit" || question == "quit" || question == "salir" {
					break
				}

				spinner := ui.NewSmartSpinner(t.GetMessage("chat.thinking", 0, map[string]interface{}{
					"Repo": repo.String(),
				}))
				spinner.Start()

				answer, err := chatService.HandleTurn(ctx, question)
				spinner.Stop()
				if err != nil {
					ui.Error.Println(err.Error())
					continue
				}

				fmt.Println(answer)
				fmt.Println()
			}

			turns := len(chatService.Transcript())
			chatService.Reset()

			ui.Dim.Println(t.GetMessage("chat.goodbye", 0, map[string]interface{}{
				"Turns": turns,
			}))
			return scanner.Err()
		},
	}
}
