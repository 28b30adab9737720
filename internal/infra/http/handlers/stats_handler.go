package handlers

import (
	"net/http"

	"github.com/xavierca1/outreach-guardian/internal/usecase"
)

type StatsHandler struct {
	Leads  usecase.LeadStoreInterface
	Stats  usecase.StatsStoreInterface
	Policy usecase.ContactPolicy
}

func NewStatsHandler(leads usecase.LeadStoreInterface, stats usecase.StatsStoreInterface, policy usecase.ContactPolicy) *StatsHandler {
	return &StatsHandler{Leads: leads, Stats: stats, Policy: policy}
}

type todayStatsResponse struct {
	MessagesSent int    `json:"messages_sent"`
	AIReplies    int    `json:"ai_replies"`
	TotalLeads   int    `json:"total_leads"`
	Date         string `json:"date"`
}

// HandleToday serves GET /stats/today for the dashboard.
func (h *StatsHandler) HandleToday(w http.ResponseWriter, r *http.Request) {
	today := h.Policy.Today()

	stats, err := h.Stats.GetByDate(r.Context(), today)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	totalLeads, err := h.Leads.CountAll(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, todayStatsResponse{
		MessagesSent: stats.TotalSent(),
		AIReplies:    stats.AIRepliesSent,
		TotalLeads:   totalLeads,
		Date:         today,
	})
}
