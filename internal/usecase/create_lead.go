package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/anvaya/crm-backend/internal/entity"
)

type CreateLeadInput struct {
	Name        string   `json:"name"`
	Source      string   `json:"source"`
	SalesAgent  string   `json:"salesAgent"`
	Status      string   `json:"status"`
	Tags        []string `json:"tags"`
	TimeToClose int      `json:"timeToClose"`
	Priority    string   `json:"priority"`
}

// AgentNotifier tells a sales agent a new lead landed on their desk.
// Implemented by the SMTP sender; nil means notifications are off.
type AgentNotifier interface {
	SendLeadAssigned(to, agentName, leadName string) error
}

type CreateLeadUseCase struct {
	Leads    entity.LeadRepository
	Agents   entity.SalesAgentRepository
	Notifier AgentNotifier
}

func NewCreateLeadUseCase(leads entity.LeadRepository, agents entity.SalesAgentRepository, notifier AgentNotifier) *CreateLeadUseCase {
	return &CreateLeadUseCase{Leads: leads, Agents: agents, Notifier: notifier}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, validationError("Invalid input: 'name' is required.")
	}
	if !ValidateEnum(input.Source, LeadSources) {
		return nil, validationError(fmt.Sprintf("Invalid source input: 'source' must be one of: [%s]", enumList(LeadSources)))
	}
	if !ValidateID(input.SalesAgent) {
		return nil, validationError(fmt.Sprintf("Invalid salesAgent ID: %s. Please provide a valid ID.", input.SalesAgent))
	}
	if input.Status != "" && !ValidateEnum(input.Status, LeadStatuses) {
		return nil, validationError(fmt.Sprintf("Invalid status input: 'status' must be one of: [%s]", enumList(LeadStatuses)))
	}
	for _, tagID := range input.Tags {
		if !ValidateID(tagID) {
			return nil, validationError(fmt.Sprintf("Invalid tag ID: %s. Please provide a valid ID.", tagID))
		}
	}
	if input.TimeToClose < 0 {
		return nil, validationError("Invalid input: 'timeToClose' must be a non-negative integer.")
	}

	agent, err := uc.Agents.FindByID(ctx, input.SalesAgent)
	if err != nil {
		if errors.Is(err, entity.ErrAgentNotFound) {
			return nil, notFoundError(fmt.Sprintf("Sales agent with ID %s not found.", input.SalesAgent))
		}
		return nil, err
	}

	lead := entity.NewLead(input.Name, input.Source, agent.ID, input.Status, input.Tags, input.TimeToClose, input.Priority)
	if err := uc.Leads.Create(ctx, lead); err != nil {
		return nil, err
	}

	if uc.Notifier != nil {
		if err := uc.Notifier.SendLeadAssigned(agent.Email, agent.Name, lead.Name); err != nil {
			log.Printf("lead %s: assignment mail to %s failed: %v", lead.ID, agent.Email, err)
		}
	}

	return lead, nil
}
