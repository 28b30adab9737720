package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/outreach-guardian/internal/usecase"
)

func aiRouter(chat *MockChatClient, leads *MockLeadStore, stats *MockStatsStore) *chi.Mux {
	policy := usecase.ContactPolicy{Location: time.UTC}

	h := NewAIHandler(
		usecase.NewClassifyIntentUseCase(chat, leads),
		usecase.NewGenerateResponseUseCase(chat, stats, policy),
	)

	r := chi.NewRouter()
	r.Post("/ai/classify-intent", h.HandleClassifyIntent)
	r.Post("/ai/generate-response", h.HandleGenerateResponse)
	return r
}

func TestClassifyIntentEndpoint(t *testing.T) {
	chat := new(MockChatClient)
	chat.On("Complete", mock.Anything, mock.Anything, "do you sell signals?").Return("systems", nil)

	leads := new(MockLeadStore)
	leads.On("SetIntent", mock.Anything, "instagram", "ana", "systems").Return(nil)

	router := aiRouter(chat, leads, new(MockStatsStore))
	rec := postJSON(t, router, "/ai/classify-intent", map[string]string{
		"message": "do you sell signals?",
		"handle":  "ana",
		"channel": "instagram",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.Equal(t, "systems", resp["intent"])
	assert.Equal(t, "do you sell signals?", resp["message"])
	leads.AssertExpectations(t)
}

func TestClassifyIntentRequiresMessage(t *testing.T) {
	router := aiRouter(new(MockChatClient), new(MockLeadStore), new(MockStatsStore))

	rec := postJSON(t, router, "/ai/classify-intent", map[string]string{"handle": "ana"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateResponseEndpoint(t *testing.T) {
	chat := new(MockChatClient)
	chat.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return("Claro! Te cuento como empezar.", nil)

	stats := new(MockStatsStore)
	stats.On("IncrementAIReplies", mock.Anything, mock.Anything).Return(nil)

	router := aiRouter(chat, new(MockLeadStore), stats)
	rec := postJSON(t, router, "/ai/generate-response", map[string]string{
		"lead_context": "new lead, high interest",
		"user_message": "como empiezo?",
		"intent":       "learn",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.Equal(t, "Claro! Te cuento como empezar.", resp["response"])
	assert.Equal(t, "learn", resp["intent"])
	stats.AssertExpectations(t)
}

func TestGenerateResponseCompletionFailureIs500(t *testing.T) {
	chat := new(MockChatClient)
	chat.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("completion api status 503"))

	router := aiRouter(chat, new(MockLeadStore), new(MockStatsStore))
	rec := postJSON(t, router, "/ai/generate-response", map[string]string{
		"user_message": "hola",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]any
	json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.Equal(t, false, resp["success"])
}
