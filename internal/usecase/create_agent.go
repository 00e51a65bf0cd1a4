package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anvaya/crm-backend/internal/entity"
)

type CreateAgentInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateAgentUseCase struct {
	Agents entity.SalesAgentRepository
}

func NewCreateAgentUseCase(agents entity.SalesAgentRepository) *CreateAgentUseCase {
	return &CreateAgentUseCase{Agents: agents}
}

// Execute runs the fixed pipeline: field validation, then the duplicate
// pre-check, then a single insert. The unique index on email backs up the
// pre-check, so a racing insert still comes back as a conflict.
func (uc *CreateAgentUseCase) Execute(ctx context.Context, input CreateAgentInput) (*entity.SalesAgent, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, validationError("Invalid input: 'name' is required.")
	}
	if !ValidateEmail(input.Email) {
		return nil, validationError("Invalid input: 'email' must be a valid email address.")
	}

	existing, err := uc.Agents.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, entity.ErrAgentNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, conflictError(fmt.Sprintf("Sales agent with email %s already exists.", input.Email))
	}

	agent := entity.NewSalesAgent(input.Name, input.Email)
	if err := uc.Agents.Create(ctx, agent); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, conflictError(fmt.Sprintf("Sales agent with email %s already exists.", input.Email))
		}
		return nil, err
	}

	return agent, nil
}
