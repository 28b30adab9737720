package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/outreach-guardian/internal/entity"
	"github.com/xavierca1/outreach-guardian/internal/usecase"
)

func TestStatsToday(t *testing.T) {
	policy := usecase.ContactPolicy{Location: time.UTC}
	today := policy.Today()

	stats := new(MockStatsStore)
	stats.On("GetByDate", mock.Anything, today).Return(entity.DailyStats{
		Date:           today,
		IGMessagesSent: 12,
		WAMessagesSent: 5,
		AIRepliesSent:  7,
	}, nil)

	leads := new(MockLeadStore)
	leads.On("CountAll", mock.Anything).Return(140, nil)

	h := NewStatsHandler(leads, stats, policy)

	req := httptest.NewRequest(http.MethodGet, "/stats/today", nil)
	rec := httptest.NewRecorder()
	h.HandleToday(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.EqualValues(t, 17, resp["messages_sent"])
	assert.EqualValues(t, 7, resp["ai_replies"])
	assert.EqualValues(t, 140, resp["total_leads"])
	assert.Equal(t, today, resp["date"])
}

func TestStatsTodayFreshDayIsAllZeroes(t *testing.T) {
	policy := usecase.ContactPolicy{Location: time.UTC}

	stats := new(MockStatsStore)
	stats.On("GetByDate", mock.Anything, mock.Anything).Return(entity.DailyStats{Date: policy.Today()}, nil)

	leads := new(MockLeadStore)
	leads.On("CountAll", mock.Anything).Return(0, nil)

	h := NewStatsHandler(leads, stats, policy)

	req := httptest.NewRequest(http.MethodGet, "/stats/today", nil)
	rec := httptest.NewRecorder()
	h.HandleToday(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.EqualValues(t, 0, resp["messages_sent"])
	assert.EqualValues(t, 0, resp["ai_replies"])
}
