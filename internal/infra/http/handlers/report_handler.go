package handlers

import (
	"net/http"
	"time"

	"github.com/anvaya/crm-backend/internal/entity"
	"github.com/anvaya/crm-backend/internal/infra/http/middleware"
	"github.com/anvaya/crm-backend/internal/usecase"
)

// ReportHandler serves the four aggregate views. Each request scans the
// full lead collection and folds it in memory; nothing is cached.
type ReportHandler struct {
	Leads entity.LeadRepository
	Now   func() time.Time
}

func NewReportHandler(leads entity.LeadRepository) *ReportHandler {
	return &ReportHandler{Leads: leads, Now: time.Now}
}

func (h *ReportHandler) HandleLeadsByStatus(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.FindAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	middleware.RecordReportServed("leads-by-status")
	writeJSON(w, http.StatusOK, usecase.LeadsByStatus(leads))
}

func (h *ReportHandler) HandlePipeline(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.FindAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	middleware.RecordReportServed("pipeline")
	writeJSON(w, http.StatusOK, usecase.PipelineSummary(leads))
}

func (h *ReportHandler) HandleClosedByAgent(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.Find(r.Context(), entity.LeadFilter{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	middleware.RecordReportServed("closed-by-agent")
	writeJSON(w, http.StatusOK, usecase.ClosedByAgent(leads))
}

func (h *ReportHandler) HandleLastWeek(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.FindAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	middleware.RecordReportServed("last-week")
	writeJSON(w, http.StatusOK, usecase.ClosedLastWeek(leads, h.Now()))
}
