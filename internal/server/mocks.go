package server

import (
	"context"

	"github.com/Tomas-vilte/MateChat/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) HandleTurn(ctx context.Context, question string) (string, error) {
	args := m.Called(ctx, question)
	return args.String(0), args.Error(1)
}

func (m *MockChatService) Transcript() []models.ConversationTurn {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.ConversationTurn)
}

func (m *MockChatService) Reset() {
	m.Called()
}
