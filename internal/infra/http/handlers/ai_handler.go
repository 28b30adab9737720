package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/outreach-guardian/internal/infra/http/middleware"
	"github.com/xavierca1/outreach-guardian/internal/usecase"
)

type AIHandler struct {
	Classify *usecase.ClassifyIntentUseCase
	Generate *usecase.GenerateResponseUseCase
}

func NewAIHandler(classify *usecase.ClassifyIntentUseCase, generate *usecase.GenerateResponseUseCase) *AIHandler {
	return &AIHandler{Classify: classify, Generate: generate}
}

func (h *AIHandler) HandleClassifyIntent(w http.ResponseWriter, r *http.Request) {
	var input usecase.ClassifyIntentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Error: "invalid JSON"})
		return
	}

	if errs := usecase.ValidateClassifyIntentInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	output, err := h.Classify.Execute(r.Context(), input)
	if err != nil {
		middleware.RecordAIRequest("classify_intent", "error")
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordAIRequest("classify_intent", "ok")
	writeJSON(w, http.StatusOK, output)
}

func (h *AIHandler) HandleGenerateResponse(w http.ResponseWriter, r *http.Request) {
	var input usecase.GenerateResponseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Error: "invalid JSON"})
		return
	}

	if errs := usecase.ValidateGenerateResponseInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	output, err := h.Generate.Execute(r.Context(), input)
	if err != nil {
		middleware.RecordAIRequest("generate_response", "error")
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordAIRequest("generate_response", "ok")
	writeJSON(w, http.StatusOK, output)
}
