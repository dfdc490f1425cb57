package github

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateChat/internal/config"
	"github.com/Tomas-vilte/MateChat/internal/domain/ports"
	"github.com/Tomas-vilte/MateChat/internal/i18n"
)

// GitHubProviderFactory implementa VCSProviderFactory para GitHub
type GitHubProviderFactory struct{}

// NewGitHubProviderFactory crea una nueva factory para GitHub
func NewGitHubProviderFactory() *GitHubProviderFactory {
	return &GitHubProviderFactory{}
}

// CreateFetcher crea el cliente de la API REST de GitHub
func (f *GitHubProviderFactory) CreateFetcher(
	_ context.Context,
	cfg *config.Config,
	trans *i18n.Translations,
) (ports.RepoFetcher, error) {
	if cfg.GitHubToken == "" {
		return nil, fmt.Errorf("%s", trans.GetMessage("error.missing_github_token", 0, nil))
	}
	return NewGitHubClient(cfg.GitHubToken), nil
}

// ValidateConfig valida la configuración de GitHub
func (f *GitHubProviderFactory) ValidateConfig(cfg *config.Config) error {
	if cfg.GitHubToken == "" {
		return fmt.Errorf("github token es requerido")
	}
	return nil
}

// Name retorna el nombre del proveedor
func (f *GitHubProviderFactory) Name() string {
	return "github"
}
