package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/outreach-guardian/internal/usecase"
)

type errorResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Code    string   `json:"code,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeValidationErrors(w http.ResponseWriter, errs []usecase.ValidationError) {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Error())
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Success: false,
		Error:   "validation failed",
		Fields:  fields,
	})
}

// writeUseCaseError maps the two error classes: domain rejections become
// 4xx, collaborator failures become 500.
func writeUseCaseError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusConflict
		if domainErr.Code == usecase.CodeLeadNotFound {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{
			Success: false,
			Error:   domainErr.Message,
			Code:    domainErr.Code,
		})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Success: false,
		Error:   err.Error(),
	})
}
