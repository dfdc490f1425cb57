package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainErrors "github.com/Tomas-vilte/MateChat/internal/domain/errors"
	"github.com/Tomas-vilte/MateChat/internal/domain/models"
	"github.com/Tomas-vilte/MateChat/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, svc *MockChatService) *Server {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return New(svc, trans)
}

func postChat(t *testing.T, srv *Server, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	return resp
}

func TestChatHandler_Chat(t *testing.T) {
	// Arrange
	svc := new(MockChatService)
	svc.On("HandleTurn", mock.Anything, "list the issues").Return("There are 3 open issues.", nil)
	srv := newTestServer(t, svc)

	// Act
	resp := postChat(t, srv, `{"question":"list the issues"}`)

	// Assert
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "There are 3 open issues.", body["answer"])
	svc.AssertExpectations(t)
}

func TestChatHandler_Chat_EmptyQuestion(t *testing.T) {
	svc := new(MockChatService)
	svc.On("HandleTurn", mock.Anything, "").Return("", domainErrors.NewInvalidInputError())
	srv := newTestServer(t, svc)

	resp := postChat(t, srv, `{"question":""}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "question is required", body["message"])
}

func TestChatHandler_Chat_InvalidBody(t *testing.T) {
	svc := new(MockChatService)
	srv := newTestServer(t, svc)

	resp := postChat(t, srv, `{not json`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	svc.AssertNotCalled(t, "HandleTurn")
}

func TestChatHandler_Transcript(t *testing.T) {
	svc := new(MockChatService)
	svc.On("Transcript").Return([]models.ConversationTurn{
		{Question: "q1", Answer: "a1", Intent: models.IntentIssues, Repo: "tomi/matechat"},
	})
	srv := newTestServer(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transcript", nil)
	resp, err := srv.App().Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Turns []models.ConversationTurn `json:"turns"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Turns, 1)
	assert.Equal(t, "q1", body.Turns[0].Question)
}

func TestChatHandler_Reset(t *testing.T) {
	svc := new(MockChatService)
	svc.On("Reset").Return()
	srv := newTestServer(t, svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/transcript", nil)
	resp, err := srv.App().Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	svc.AssertCalled(t, "Reset")
}

func TestServer_ServesChatPage(t *testing.T) {
	srv := newTestServer(t, new(MockChatService))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := srv.App().Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	page, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(page), "/api/v1/chat"))
}
