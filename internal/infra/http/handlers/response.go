package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/anvaya/crm-backend/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError emits the flat {"error": msg} body every endpoint uses.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeUseCaseError maps a use case failure to its HTTP status. Anything
// that is not a DomainError stays a generic 500 with no detail leaked.
func writeUseCaseError(w http.ResponseWriter, err error) {
	if domainErr, ok := err.(*usecase.DomainError); ok {
		switch domainErr.Code {
		case usecase.CodeValidation:
			writeError(w, http.StatusBadRequest, domainErr.Message)
		case usecase.CodeNotFound:
			writeError(w, http.StatusNotFound, domainErr.Message)
		case usecase.CodeConflict:
			writeError(w, http.StatusConflict, domainErr.Message)
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeError(w, http.StatusInternalServerError, "Internal server error")
}
