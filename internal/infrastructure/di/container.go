package di

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateChat/internal/config"
	"github.com/Tomas-vilte/MateChat/internal/domain/models"
	"github.com/Tomas-vilte/MateChat/internal/domain/ports"
	"github.com/Tomas-vilte/MateChat/internal/i18n"
	airegistry "github.com/Tomas-vilte/MateChat/internal/infrastructure/ai/registry"
	vcsregistry "github.com/Tomas-vilte/MateChat/internal/infrastructure/vcs/registry"
	"github.com/Tomas-vilte/MateChat/internal/services"
	"github.com/Tomas-vilte/MateChat/internal/services/routing"
)

const defaultVCSProvider = "github"

// Container gestiona las dependencias de la aplicación
type Container struct {
	config       *config.Config
	translations *i18n.Translations

	// Registries
	aiRegistry  *airegistry.AIProviderRegistry
	vcsRegistry *vcsregistry.VCSProviderRegistry

	// Componentes independientes del repo (lazy initialized)
	fetcher    ports.RepoFetcher
	composer   ports.AnswerComposer
	classifier ports.IntentClassifier
}

// NewContainer crea un nuevo contenedor de dependencias
func NewContainer(cfg *config.Config, trans *i18n.Translations) *Container {
	return &Container{
		config:       cfg,
		translations: trans,
		aiRegistry:   airegistry.NewAIProviderRegistry(),
		vcsRegistry:  vcsregistry.NewVCSProviderRegistry(),
	}
}

// RegisterAIProvider registra un proveedor de IA
func (c *Container) RegisterAIProvider(name string, factory airegistry.AIProviderFactory) error {
	return c.aiRegistry.Register(name, factory)
}

// RegisterVCSProvider registra un proveedor VCS
func (c *Container) RegisterVCSProvider(name string, factory vcsregistry.VCSProviderFactory) error {
	return c.vcsRegistry.Register(name, factory)
}

// GetAIRegistry retorna el registro de proveedores AI
func (c *Container) GetAIRegistry() *airegistry.AIProviderRegistry {
	return c.aiRegistry
}

// GetVCSRegistry retorna el registro de proveedores VCS
func (c *Container) GetVCSRegistry() *vcsregistry.VCSProviderRegistry {
	return c.vcsRegistry
}

// GetFetcher retorna el cliente de GitHub (lazy initialization)
func (c *Container) GetFetcher(ctx context.Context) (ports.RepoFetcher, error) {
	if c.fetcher != nil {
		return c.fetcher, nil
	}

	factory, err := c.vcsRegistry.Get(defaultVCSProvider)
	if err != nil {
		return nil, err
	}

	fetcher, err := factory.CreateFetcher(ctx, c.config, c.translations)
	if err != nil {
		return nil, fmt.Errorf("error al crear el cliente VCS: %w", err)
	}

	c.fetcher = fetcher
	return fetcher, nil
}

// GetComposer retorna el composer de respuestas (lazy initialization)
func (c *Container) GetComposer(ctx context.Context) (ports.AnswerComposer, error) {
	if c.composer != nil {
		return c.composer, nil
	}

	factory, err := c.aiFactory()
	if err != nil {
		return nil, err
	}

	composer, err := factory.CreateComposer(ctx, c.config, c.translations)
	if err != nil {
		return nil, fmt.Errorf("error al crear el composer de IA: %w", err)
	}

	c.composer = composer
	return composer, nil
}

// GetIntentClassifier retorna el clasificador configurado: la heurística por
// defecto, o la del proveedor de IA con la heurística como fallback.
func (c *Container) GetIntentClassifier(ctx context.Context) (ports.IntentClassifier, error) {
	if c.classifier != nil {
		return c.classifier, nil
	}

	heuristic := routing.NewHeuristicClassifier(c.config.ResultLimit)

	if c.config.Classifier != config.ClassifierAI {
		c.classifier = heuristic
		return c.classifier, nil
	}

	factory, err := c.aiFactory()
	if err != nil {
		return nil, err
	}

	classifier, err := factory.CreateIntentClassifier(ctx, c.config, c.translations, heuristic)
	if err != nil {
		return nil, fmt.Errorf("error al crear el clasificador de IA: %w", err)
	}

	c.classifier = classifier
	return classifier, nil
}

func (c *Container) aiFactory() (airegistry.AIProviderFactory, error) {
	active := string(c.config.AIConfig.ActiveAI)
	if active == "" {
		return nil, fmt.Errorf("no hay IA activa configurada")
	}

	factory, err := c.aiRegistry.Get(active)
	if err != nil {
		return nil, fmt.Errorf("proveedor de IA '%s' no encontrado: %w", active, err)
	}
	return factory, nil
}

// CreateChatService arma el servicio de chat para un repositorio puntual.
func (c *Container) CreateChatService(ctx context.Context, repo models.RepoReference) (ports.ChatService, error) {
	if repo.IsZero() {
		return nil, fmt.Errorf("%s", c.translations.GetMessage("error.no_repo_configured", 0, nil))
	}

	classifier, err := c.GetIntentClassifier(ctx)
	if err != nil {
		return nil, err
	}

	fetcher, err := c.GetFetcher(ctx)
	if err != nil {
		return nil, err
	}

	composer, err := c.GetComposer(ctx)
	if err != nil {
		return nil, err
	}

	return services.NewChatService(
		services.WithChatRepo(repo),
		services.WithChatClassifier(classifier),
		services.WithChatFetcher(fetcher),
		services.WithChatComposer(composer),
		services.WithChatTranslations(c.translations),
	), nil
}

// ResolveRepo determina el repositorio del turno: el flag explícito pisa al
// configurado por defecto.
func (c *Container) ResolveRepo(flagValue string) (models.RepoReference, error) {
	raw := flagValue
	if raw == "" {
		raw = c.config.DefaultRepo
	}
	if raw == "" {
		return models.RepoReference{}, fmt.Errorf("%s", c.translations.GetMessage("error.no_repo_configured", 0, nil))
	}
	return models.ParseRepoReference(raw)
}

// GetConfig retorna la configuración
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetTranslations retorna las traducciones
func (c *Container) GetTranslations() *i18n.Translations {
	return c.translations
}
