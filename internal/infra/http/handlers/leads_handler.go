package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/outreach-guardian/internal/usecase"
)

// Dashboard list limits.
const (
	leadsPageSize = 50
	hotPageSize   = 20
)

type LeadsHandler struct {
	Leads             usecase.LeadStoreInterface
	UpdateScore       *usecase.UpdateScoreUseCase
	HotScoreThreshold int
}

func NewLeadsHandler(leads usecase.LeadStoreInterface, updateScore *usecase.UpdateScoreUseCase, hotThreshold int) *LeadsHandler {
	return &LeadsHandler{
		Leads:             leads,
		UpdateScore:       updateScore,
		HotScoreThreshold: hotThreshold,
	}
}

// HandleList serves GET /leads?status=, most-recently-contacted first.
func (h *LeadsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	leads, err := h.Leads.List(r.Context(), status, leadsPageSize)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, leads)
}

// HandleHot serves GET /leads/hot: the best-scoring leads, hottest first.
func (h *LeadsHandler) HandleHot(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.ListHot(r.Context(), h.HotScoreThreshold, hotPageSize)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadsHandler) HandleUpdateScore(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateScoreInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Error: "invalid JSON"})
		return
	}

	if errs := usecase.ValidateUpdateScoreInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	output, err := h.UpdateScore.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
