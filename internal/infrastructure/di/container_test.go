package di

import (
	"context"
	"testing"

	"github.com/Tomas-vilte/MateChat/internal/config"
	"github.com/Tomas-vilte/MateChat/internal/domain/models"
	"github.com/Tomas-vilte/MateChat/internal/domain/ports"
	"github.com/Tomas-vilte/MateChat/internal/i18n"
	"github.com/Tomas-vilte/MateChat/internal/services"
	"github.com/Tomas-vilte/MateChat/internal/services/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAIFactory struct {
	composerCalls   int
	classifierCalls int
}

func (f *stubAIFactory) CreateComposer(context.Context, *config.Config, *i18n.Translations) (ports.AnswerComposer, error) {
	f.composerCalls++
	return new(services.MockAnswerComposer), nil
}

func (f *stubAIFactory) CreateIntentClassifier(_ context.Context, _ *config.Config, _ *i18n.Translations, fallback ports.IntentClassifier) (ports.IntentClassifier, error) {
	f.classifierCalls++
	return fallback, nil
}

func (f *stubAIFactory) ValidateConfig(*config.Config) error { return nil }

func (f *stubAIFactory) Name() string { return "gemini" }

type stubVCSFactory struct {
	fetcherCalls int
}

func (f *stubVCSFactory) CreateFetcher(context.Context, *config.Config, *i18n.Translations) (ports.RepoFetcher, error) {
	f.fetcherCalls++
	return new(services.MockRepoFetcher), nil
}

func (f *stubVCSFactory) ValidateConfig(*config.Config) error { return nil }

func (f *stubVCSFactory) Name() string { return "github" }

func newTestContainer(t *testing.T, cfg *config.Config) (*Container, *stubAIFactory, *stubVCSFactory) {
	t.Helper()

	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	container := NewContainer(cfg, trans)
	aiFactory := &stubAIFactory{}
	vcsFactory := &stubVCSFactory{}
	require.NoError(t, container.RegisterAIProvider("gemini", aiFactory))
	require.NoError(t, container.RegisterVCSProvider("github", vcsFactory))
	return container, aiFactory, vcsFactory
}

func testConfig() *config.Config {
	return &config.Config{
		Language:    "en",
		ResultLimit: 30,
		Classifier:  config.ClassifierHeuristic,
		AIConfig:    config.AIConfig{ActiveAI: config.AIGemini},
	}
}

func TestContainer_ResolveRepo(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultRepo = "tomi/matechat"
	container, _, _ := newTestContainer(t, cfg)

	tests := []struct {
		name string
		flag string
		want string
	}{
		{name: "flag wins over default", flag: "otro/repo", want: "otro/repo"},
		{name: "default when no flag", flag: "", want: "tomi/matechat"},
		{name: "github url is accepted", flag: "https://github.com/tomi/matechat", want: "tomi/matechat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := container.ResolveRepo(tt.flag)

			require.NoError(t, err)
			assert.Equal(t, tt.want, repo.String())
		})
	}
}

func TestContainer_ResolveRepo_NothingConfigured(t *testing.T) {
	container, _, _ := newTestContainer(t, testConfig())

	_, err := container.ResolveRepo("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "No repository configured")
}

func TestContainer_GetIntentClassifier_HeuristicByDefault(t *testing.T) {
	container, aiFactory, _ := newTestContainer(t, testConfig())

	classifier, err := container.GetIntentClassifier(context.Background())

	require.NoError(t, err)
	assert.IsType(t, &routing.HeuristicClassifier{}, classifier)
	assert.Zero(t, aiFactory.classifierCalls)
}

func TestContainer_GetIntentClassifier_AIWhenConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.Classifier = config.ClassifierAI
	container, aiFactory, _ := newTestContainer(t, cfg)

	_, err := container.GetIntentClassifier(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, aiFactory.classifierCalls)
}

func TestContainer_GetFetcher_IsLazyAndCached(t *testing.T) {
	container, _, vcsFactory := newTestContainer(t, testConfig())
	ctx := context.Background()

	first, err := container.GetFetcher(ctx)
	require.NoError(t, err)
	second, err := container.GetFetcher(ctx)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, vcsFactory.fetcherCalls)
}

func TestContainer_GetComposer_NoActiveAI(t *testing.T) {
	cfg := testConfig()
	cfg.AIConfig.ActiveAI = ""
	container, _, _ := newTestContainer(t, cfg)

	_, err := container.GetComposer(context.Background())

	assert.Error(t, err)
}

func TestContainer_CreateChatService(t *testing.T) {
	container, _, _ := newTestContainer(t, testConfig())

	service, err := container.CreateChatService(context.Background(), models.RepoReference{Owner: "tomi", Name: "matechat"})

	require.NoError(t, err)
	assert.NotNil(t, service)
}

func TestContainer_CreateChatService_RequiresRepo(t *testing.T) {
	container, _, _ := newTestContainer(t, testConfig())

	_, err := container.CreateChatService(context.Background(), models.RepoReference{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "No repository configured")
}
