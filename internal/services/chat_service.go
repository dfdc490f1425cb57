package services

import (
	"context"
	"errors"
	"strings"
	"time"

	domainErrors "github.com/Tomas-vilte/MateChat/internal/domain/errors"
	"github.com/Tomas-vilte/MateChat/internal/domain/models"
	"github.com/Tomas-vilte/MateChat/internal/domain/ports"
	"github.com/Tomas-vilte/MateChat/internal/i18n"
	"github.com/Tomas-vilte/MateChat/internal/logger"
)

var _ ports.ChatService = (*ChatService)(nil)

// ChatService orquesta el turno completo: clasificar la pregunta, traer los
// datos de GitHub y componer la respuesta con el modelo de IA. Un turno
// nunca toca más de un repositorio.
type ChatService struct {
	repo       models.RepoReference
	classifier ports.IntentClassifier
	fetcher    ports.RepoFetcher
	composer   ports.AnswerComposer
	trans      *i18n.Translations
	transcript *Transcript
}

type ChatServiceOption func(*ChatService)

func WithChatRepo(repo models.RepoReference) ChatServiceOption {
	return func(s *ChatService) { s.repo = repo }
}

func WithChatClassifier(classifier ports.IntentClassifier) ChatServiceOption {
	return func(s *ChatService) { s.classifier = classifier }
}

func WithChatFetcher(fetcher ports.RepoFetcher) ChatServiceOption {
	return func(s *ChatService) { s.fetcher = fetcher }
}

func WithChatComposer(composer ports.AnswerComposer) ChatServiceOption {
	return func(s *ChatService) { s.composer = composer }
}

func WithChatTranslations(trans *i18n.Translations) ChatServiceOption {
	return func(s *ChatService) { s.trans = trans }
}

func NewChatService(opts ...ChatServiceOption) *ChatService {
	s := &ChatService{
		transcript: NewTranscript(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HandleTurn procesa una pregunta de punta a punta. Los fallos del fetcher
// se devuelven como texto de respuesta legible y los del composer degradan
// al mensaje de fallback: el único error real es la pregunta vacía.
func (s *ChatService) HandleTurn(ctx context.Context, question string) (string, error) {
	trimmed := strings.TrimSpace(question)
	if trimmed == "" {
		return "", domainErrors.NewInvalidInputError()
	}

	intent := s.classifier.Classify(ctx, trimmed)
	logger.Debug(ctx, "pregunta clasificada",
		"intent", string(intent.Action),
		"limit", intent.Limit,
		"repo", s.repo.String(),
	)

	records, err := s.fetcher.Fetch(ctx, s.repo, intent)
	if err != nil {
		answer := s.messageForFetchError(err)
		s.appendTurn(trimmed, answer, intent.Action)
		return answer, nil
	}

	answer, err := s.composer.Compose(ctx, trimmed, records)
	if err != nil {
		logger.Warn(ctx, "fallo la composición de la respuesta", "error", err)
		answer = s.trans.GetMessage("chat.fallback_answer", 0, nil)
	}

	s.appendTurn(trimmed, answer, intent.Action)
	return answer, nil
}

func (s *ChatService) Transcript() []models.ConversationTurn {
	return s.transcript.All()
}

func (s *ChatService) Reset() {
	s.transcript.Clear()
}

func (s *ChatService) appendTurn(question, answer string, intent models.Intent) {
	s.transcript.Append(models.ConversationTurn{
		Question: question,
		Answer:   answer,
		Intent:   intent,
		Repo:     s.repo.String(),
		AskedAt:  time.Now(),
	})
}

// messageForFetchError traduce la taxonomía de errores del fetcher a texto
// visible para el usuario.
func (s *ChatService) messageForFetchError(err error) string {
	var notFound *domainErrors.RepoNotFoundError
	if errors.As(err, &notFound) {
		return s.trans.GetMessage("error.repo_not_found", 0, map[string]interface{}{
			"Repo": notFound.Repo,
		})
	}

	var auth *domainErrors.AuthError
	if errors.As(err, &auth) {
		return s.trans.GetMessage("error.repo_auth", 0, map[string]interface{}{
			"Repo": auth.Repo,
		})
	}

	var rateLimited *domainErrors.RateLimitedError
	if errors.As(err, &rateLimited) {
		return s.trans.GetMessage("error.rate_limited", 0, nil)
	}

	return s.trans.GetMessage("error.github_generic", 0, map[string]interface{}{
		"Repo":  s.repo.String(),
		"Error": err.Error(),
	})
}
