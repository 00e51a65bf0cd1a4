package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/anvaya/crm-backend/internal/entity"
	"github.com/anvaya/crm-backend/internal/usecase"
)

type AgentHandler struct {
	CreateAgentUC *usecase.CreateAgentUseCase
	Agents        entity.SalesAgentRepository
}

func NewAgentHandler(uc *usecase.CreateAgentUseCase, agents entity.SalesAgentRepository) *AgentHandler {
	return &AgentHandler{CreateAgentUC: uc, Agents: agents}
}

func (h *AgentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateAgentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	agent, err := h.CreateAgentUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, agent)
}

func (h *AgentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	agents, err := h.Agents.FindAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, agents)
}
