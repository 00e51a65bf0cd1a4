package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/anvaya/crm-backend/internal/entity"
	"github.com/anvaya/crm-backend/internal/infra/queue"
)

// UpdateLeadInput carries a partial update: nil fields are left untouched
// on the stored lead.
type UpdateLeadInput struct {
	Name        *string   `json:"name"`
	Source      *string   `json:"source"`
	SalesAgent  *string   `json:"salesAgent"`
	Status      *string   `json:"status"`
	Tags        *[]string `json:"tags"`
	TimeToClose *int      `json:"timeToClose"`
	Priority    *string   `json:"priority"`
}

// LeadEventPublisher pushes a lead-closed event onto the queue.
// Nil disables publishing.
type LeadEventPublisher interface {
	PublishLeadClosed(ctx context.Context, payload queue.LeadClosedPayload) error
}

type UpdateLeadUseCase struct {
	Leads     entity.LeadRepository
	Publisher LeadEventPublisher
	Now       func() time.Time
}

func NewUpdateLeadUseCase(leads entity.LeadRepository, publisher LeadEventPublisher) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Leads: leads, Publisher: publisher, Now: time.Now}
}

// Execute merges the supplied fields into the stored lead and writes it
// back once. An update carrying status "Closed" stamps closedAt with the
// current time and forces timeToClose to 0, even when the lead was
// already closed; no other code path ever clears closedAt.
func (uc *UpdateLeadUseCase) Execute(ctx context.Context, leadID string, input UpdateLeadInput) (*entity.Lead, error) {
	if !ValidateID(leadID) {
		return nil, validationError(fmt.Sprintf("Lead ID: %s must be valid.", leadID))
	}
	if input.Source != nil && !ValidateEnum(*input.Source, LeadSources) {
		return nil, validationError(fmt.Sprintf("Invalid source input: 'source' must be one of: [%s]", enumList(LeadSources)))
	}
	if input.Status != nil && !ValidateEnum(*input.Status, LeadStatuses) {
		return nil, validationError(fmt.Sprintf("Invalid status input: 'status' must be one of: [%s]", enumList(LeadStatuses)))
	}
	if input.SalesAgent != nil && !ValidateID(*input.SalesAgent) {
		return nil, validationError(fmt.Sprintf("Invalid salesAgent ID: %s. Please provide a valid ID.", *input.SalesAgent))
	}
	if input.Tags != nil {
		for _, tagID := range *input.Tags {
			if !ValidateID(tagID) {
				return nil, validationError(fmt.Sprintf("Invalid tag ID: %s. Please provide a valid ID.", tagID))
			}
		}
	}
	if input.TimeToClose != nil && *input.TimeToClose < 0 {
		return nil, validationError("Invalid input: 'timeToClose' must be a non-negative integer.")
	}

	lead, err := uc.Leads.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, notFoundError(fmt.Sprintf("Lead with ID %s not found.", leadID))
		}
		return nil, err
	}

	if input.Name != nil {
		lead.Name = *input.Name
	}
	if input.Source != nil {
		lead.Source = *input.Source
	}
	if input.SalesAgent != nil {
		lead.SalesAgentID = *input.SalesAgent
	}
	if input.Tags != nil {
		lead.Tags = *input.Tags
	}
	if input.TimeToClose != nil {
		lead.TimeToClose = *input.TimeToClose
	}
	if input.Priority != nil {
		lead.Priority = *input.Priority
	}

	now := uc.Now()
	closing := input.Status != nil && *input.Status == entity.StatusClosed
	if closing {
		lead.Close(now)
	} else if input.Status != nil {
		lead.Status = *input.Status
	}
	lead.UpdatedAt = now

	if err := uc.Leads.Update(ctx, lead); err != nil {
		return nil, err
	}

	if closing && uc.Publisher != nil {
		payload := queue.LeadClosedPayload{
			LeadID:     lead.ID,
			Name:       lead.Name,
			SalesAgent: lead.SalesAgentID,
			ClosedAt:   *lead.ClosedAt,
		}
		if err := uc.Publisher.PublishLeadClosed(ctx, payload); err != nil {
			log.Printf("lead %s: closed event publish failed: %v", lead.ID, err)
		}
	}

	return lead, nil
}
