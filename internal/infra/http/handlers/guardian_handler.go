package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/outreach-guardian/internal/infra/http/middleware"
	"github.com/xavierca1/outreach-guardian/internal/usecase"
)

// GuardianHandler exposes the eligibility engine: can-contact, log-attempt
// and update-status, consumed by the outreach orchestrator.
type GuardianHandler struct {
	CheckContact *usecase.CheckContactUseCase
	LogAttempt   *usecase.LogAttemptUseCase
	UpdateStatus *usecase.UpdateStatusUseCase
}

func NewGuardianHandler(check *usecase.CheckContactUseCase, logAttempt *usecase.LogAttemptUseCase, updateStatus *usecase.UpdateStatusUseCase) *GuardianHandler {
	return &GuardianHandler{
		CheckContact: check,
		LogAttempt:   logAttempt,
		UpdateStatus: updateStatus,
	}
}

type successResponse struct {
	Success bool `json:"success"`
}

func (h *GuardianHandler) HandleCanContact(w http.ResponseWriter, r *http.Request) {
	var input usecase.CheckContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Error: "invalid JSON"})
		return
	}

	if errs := usecase.ValidateCheckContactInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	decision, err := h.CheckContact.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordContactDecision(decision.Allowed, decision.Reason)
	writeJSON(w, http.StatusOK, decision)
}

func (h *GuardianHandler) HandleLogAttempt(w http.ResponseWriter, r *http.Request) {
	var input usecase.LogAttemptInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Error: "invalid JSON"})
		return
	}

	if errs := usecase.ValidateLogAttemptInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	if err := h.LogAttempt.Execute(r.Context(), input); err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordAttemptLogged(input.Channel)
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *GuardianHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Error: "invalid JSON"})
		return
	}

	if errs := usecase.ValidateUpdateStatusInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	if err := h.UpdateStatus.Execute(r.Context(), input); err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
