package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/anvaya/crm-backend/internal/entity"
	"github.com/anvaya/crm-backend/internal/infra/http/middleware"
	"github.com/anvaya/crm-backend/internal/usecase"
)

type LeadHandler struct {
	CreateLeadUC *usecase.CreateLeadUseCase
	UpdateLeadUC *usecase.UpdateLeadUseCase
	Leads        entity.LeadRepository
}

func NewLeadHandler(createUC *usecase.CreateLeadUseCase, updateUC *usecase.UpdateLeadUseCase, leads entity.LeadRepository) *LeadHandler {
	return &LeadHandler{CreateLeadUC: createUC, UpdateLeadUC: updateUC, Leads: leads}
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.CreateLeadUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLeadCreated(lead.Source)
	writeJSON(w, http.StatusCreated, lead)
}

// HandleList validates each supplied filter before touching the store;
// the first invalid value short-circuits the request.
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	salesAgent := q.Get("salesAgent")
	status := q.Get("status")
	tag := q.Get("tags")
	source := q.Get("source")

	if salesAgent != "" && !usecase.ValidateID(salesAgent) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Invalid salesAgent ID: %s. Please provide a valid ID.", salesAgent))
		return
	}
	if status != "" && !usecase.ValidateEnum(status, usecase.LeadStatuses) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Invalid status input: 'status' must be one of: [%s]", strings.Join(usecase.LeadStatuses, ", ")))
		return
	}
	if tag != "" && !usecase.ValidateID(tag) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Invalid tag ID: %s. Please provide a valid ID.", tag))
		return
	}
	if source != "" && !usecase.ValidateEnum(source, usecase.LeadSources) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Invalid source input: 'source' must be one of: [%s]", strings.Join(usecase.LeadSources, ", ")))
		return
	}

	filter := entity.LeadFilter{
		SalesAgent: salesAgent,
		Status:     status,
		Tag:        tag,
		Source:     source,
	}

	leads, err := h.Leads.Find(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")

	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.UpdateLeadUC.Execute(r.Context(), leadID, input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	if input.Status != nil && *input.Status == entity.StatusClosed {
		middleware.RecordLeadClosed()
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")
	if !usecase.ValidateID(leadID) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Lead ID: %s must be valid.", leadID))
		return
	}

	err := h.Leads.Delete(r.Context(), leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("Lead with ID %s not found.", leadID))
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Lead deleted successfully"})
}
