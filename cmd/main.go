package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Tomas-vilte/MateChat/internal/cli/command/ask"
	"github.com/Tomas-vilte/MateChat/internal/cli/command/chat"
	configcmd "github.com/Tomas-vilte/MateChat/internal/cli/command/config"
	"github.com/Tomas-vilte/MateChat/internal/cli/command/serve"
	"github.com/Tomas-vilte/MateChat/internal/cli/registry"
	cfg "github.com/Tomas-vilte/MateChat/internal/config"
	"github.com/Tomas-vilte/MateChat/internal/i18n"
	"github.com/Tomas-vilte/MateChat/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/MateChat/internal/infrastructure/di"
	"github.com/Tomas-vilte/MateChat/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/MateChat/internal/logger"
	"github.com/Tomas-vilte/MateChat/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	logger.Initialize(os.Getenv("MATECHAT_DEBUG") != "", os.Getenv("MATECHAT_VERBOSE") != "")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfg.GetLocaleConfig(cfgApp.Language), "")
	if err != nil {
		log.Fatalf("Error al cargar las traducciones: %v", err)
	}

	container := di.NewContainer(cfgApp, translations)

	if err := container.RegisterAIProvider("gemini", gemini.NewGeminiProviderFactory()); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor Gemini: %v", err)
	}

	if err := container.RegisterVCSProvider("github", github.NewGitHubProviderFactory()); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor de GitHub: %v", err)
	}

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("ask", ask.NewAskCommandFactory(container)); err != nil {
		log.Fatalf("Error al registrar el comando 'ask': %v", err)
	}

	if err := registerCommand.Register("chat", chat.NewChatCommandFactory(container)); err != nil {
		log.Fatalf("Error al registrar el comando 'chat': %v", err)
	}

	if err := registerCommand.Register("serve", serve.NewServeCommandFactory(container)); err != nil {
		log.Fatalf("Error al registrar el comando 'serve': %v", err)
	}

	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		log.Fatalf("Error al registrar el comando 'config': %v", err)
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:                  "matechat",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.Version,
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              commands,
		EnableShellCompletion: true,
	}, nil
}
