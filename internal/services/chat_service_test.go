package services

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/Tomas-vilte/MateChat/internal/domain/errors"
	"github.com/Tomas-vilte/MateChat/internal/domain/models"
	"github.com/Tomas-vilte/MateChat/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, classifier *MockIntentClassifier, fetcher *MockRepoFetcher, composer *MockAnswerComposer) (*ChatService, *i18n.Translations) {
	t.Helper()

	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	service := NewChatService(
		WithChatRepo(models.RepoReference{Owner: "tomi", Name: "matechat"}),
		WithChatClassifier(classifier),
		WithChatFetcher(fetcher),
		WithChatComposer(composer),
		WithChatTranslations(trans),
	)
	return service, trans
}

func TestChatService_HandleTurn_OpenIssues(t *testing.T) {
	// Arrange
	ctx := context.Background()
	classifier := new(MockIntentClassifier)
	fetcher := new(MockRepoFetcher)
	composer := new(MockAnswerComposer)
	service, _ := newTestService(t, classifier, fetcher, composer)

	question := "List all open issues"
	intent := models.QueryIntent{Action: models.IntentIssues, Limit: 30}
	records := []models.FetchedRecord{
		{Kind: models.RecordIssue, Number: 1, Title: "bug a", State: "open"},
		{Kind: models.RecordIssue, Number: 2, Title: "bug b", State: "open"},
		{Kind: models.RecordIssue, Number: 3, Title: "bug c", State: "open"},
	}

	classifier.On("Classify", ctx, question).Return(intent)
	fetcher.On("Fetch", ctx, models.RepoReference{Owner: "tomi", Name: "matechat"}, intent).Return(records, nil)
	composer.On("Compose", ctx, question, records).Return("There are 3 open issues: bug a, bug b and bug c.", nil)

	// Act
	answer, err := service.HandleTurn(ctx, question)

	// Assert
	assert.NoError(t, err)
	assert.Contains(t, answer, "3 open issues")
	require.Len(t, service.Transcript(), 1)
	assert.Equal(t, models.IntentIssues, service.Transcript()[0].Intent)
	classifier.AssertExpectations(t)
	fetcher.AssertExpectations(t)
	composer.AssertExpectations(t)
}

func TestChatService_HandleTurn_EmptyQuestion(t *testing.T) {
	ctx := context.Background()
	classifier := new(MockIntentClassifier)
	fetcher := new(MockRepoFetcher)
	composer := new(MockAnswerComposer)
	service, _ := newTestService(t, classifier, fetcher, composer)

	// act
	_, err := service.HandleTurn(ctx, "   ")

	// assert
	var invalid *domainErrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
	assert.Empty(t, service.Transcript())
	fetcher.AssertNotCalled(t, "Fetch")
	composer.AssertNotCalled(t, "Compose")
}

func TestChatService_HandleTurn_RepoNotFound(t *testing.T) {
	ctx := context.Background()
	classifier := new(MockIntentClassifier)
	fetcher := new(MockRepoFetcher)
	composer := new(MockAnswerComposer)
	service, _ := newTestService(t, classifier, fetcher, composer)

	question := "what is this repo about?"
	intent := models.QueryIntent{Action: models.IntentSummary, Limit: 30}

	classifier.On("Classify", ctx, question).Return(intent)
	fetcher.On("Fetch", ctx, mock.Anything, intent).Return(nil, domainErrors.NewRepoNotFoundError("tomi/matechat"))

	// act
	answer, err := service.HandleTurn(ctx, question)

	// assert: el error del fetcher se vuelve texto de respuesta, no error
	assert.NoError(t, err)
	assert.Contains(t, answer, "tomi/matechat")
	assert.Contains(t, answer, "not found")
	assert.Len(t, service.Transcript(), 1)
	composer.AssertNotCalled(t, "Compose")
}

func TestChatService_HandleTurn_PrivateRepoUnauthorized(t *testing.T) {
	ctx := context.Background()
	classifier := new(MockIntentClassifier)
	fetcher := new(MockRepoFetcher)
	composer := new(MockAnswerComposer)
	service, _ := newTestService(t, classifier, fetcher, composer)

	question := "show me the commits"
	intent := models.QueryIntent{Action: models.IntentCommits, Limit: 30}

	classifier.On("Classify", ctx, question).Return(intent)
	fetcher.On("Fetch", ctx, mock.Anything, intent).Return(nil, domainErrors.NewAuthError("tomi/matechat", errors.New("401 Bad credentials")))

	// act
	answer, err := service.HandleTurn(ctx, question)

	// assert: mensaje legible, nunca un stack trace crudo
	assert.NoError(t, err)
	assert.Contains(t, answer, "rejected the configured token")
	assert.NotContains(t, answer, "401")
	assert.Len(t, service.Transcript(), 1)
}

func TestChatService_HandleTurn_RateLimited(t *testing.T) {
	ctx := context.Background()
	classifier := new(MockIntentClassifier)
	fetcher := new(MockRepoFetcher)
	composer := new(MockAnswerComposer)
	service, _ := newTestService(t, classifier, fetcher, composer)

	question := "list prs"
	intent := models.QueryIntent{Action: models.IntentPullRequests, Limit: 30}

	classifier.On("Classify", ctx, question).Return(intent)
	fetcher.On("Fetch", ctx, mock.Anything, intent).Return(nil, domainErrors.NewRateLimitedError(errors.New("403 rate limit exceeded")))

	// act
	answer, err := service.HandleTurn(ctx, question)

	// assert
	assert.NoError(t, err)
	assert.Contains(t, answer, "rate limit")
}

func TestChatService_HandleTurn_ComposerTimeoutDegradesToFallback(t *testing.T) {
	ctx := context.Background()
	classifier := new(MockIntentClassifier)
	fetcher := new(MockRepoFetcher)
	composer := new(MockAnswerComposer)
	service, trans := newTestService(t, classifier, fetcher, composer)

	question := "summarize the repo"
	intent := models.QueryIntent{Action: models.IntentSummary, Limit: 30}
	records := []models.FetchedRecord{{Kind: models.RecordRepo, Title: "tomi/matechat"}}

	classifier.On("Classify", ctx, question).Return(intent)
	fetcher.On("Fetch", ctx, mock.Anything, intent).Return(records, nil)
	composer.On("Compose", ctx, question, records).Return("", domainErrors.NewCompletionError("gemini", context.DeadlineExceeded))

	// act
	answer, err := service.HandleTurn(ctx, question)

	// assert: la respuesta es exactamente el fallback y el turno queda en la transcripción
	assert.NoError(t, err)
	assert.Equal(t, trans.GetMessage("chat.fallback_answer", 0, nil), answer)
	require.Len(t, service.Transcript(), 1)
	assert.Equal(t, answer, service.Transcript()[0].Answer)
}

func TestChatService_Reset_ClearsTranscript(t *testing.T) {
	ctx := context.Background()
	classifier := new(MockIntentClassifier)
	fetcher := new(MockRepoFetcher)
	composer := new(MockAnswerComposer)
	service, _ := newTestService(t, classifier, fetcher, composer)

	intent := models.QueryIntent{Action: models.IntentSummary, Limit: 30}
	classifier.On("Classify", ctx, mock.Anything).Return(intent)
	fetcher.On("Fetch", ctx, mock.Anything, intent).Return([]models.FetchedRecord{}, nil)
	composer.On("Compose", ctx, mock.Anything, mock.Anything).Return("nothing here", nil)

	_, err := service.HandleTurn(ctx, "hello")
	require.NoError(t, err)
	require.Len(t, service.Transcript(), 1)

	// act
	service.Reset()

	// assert
	assert.Empty(t, service.Transcript())
}
