package services

import (
	"context"

	"github.com/Tomas-vilte/MateChat/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type (
	MockIntentClassifier struct {
		mock.Mock
	}

	MockRepoFetcher struct {
		mock.Mock
	}

	MockAnswerComposer struct {
		mock.Mock
	}
)

func (m *MockIntentClassifier) Classify(ctx context.Context, question string) models.QueryIntent {
	args := m.Called(ctx, question)
	return args.Get(0).(models.QueryIntent)
}

func (m *MockRepoFetcher) Fetch(ctx context.Context, repo models.RepoReference, intent models.QueryIntent) ([]models.FetchedRecord, error) {
	args := m.Called(ctx, repo, intent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FetchedRecord), args.Error(1)
}

func (m *MockAnswerComposer) Compose(ctx context.Context, question string, records []models.FetchedRecord) (string, error) {
	args := m.Called(ctx, question, records)
	return args.String(0), args.Error(1)
}
