package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/anvaya/crm-backend/internal/entity"
	"github.com/anvaya/crm-backend/internal/usecase"
)

func TestCreateLeadSuccess(t *testing.T) {
	agent := entity.NewSalesAgent("Jane", "jane@corp.com")

	agents := new(MockSalesAgentRepository)
	agents.On("FindByID", mock.Anything, agent.ID).Return(agent, nil)

	leads := new(MockLeadRepository)
	leads.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := usecase.NewCreateLeadUseCase(leads, agents, nil)
	lead, err := uc.Execute(context.Background(), usecase.CreateLeadInput{
		Name:        "Acme Corp",
		Source:      "Referral",
		SalesAgent:  agent.ID,
		TimeToClose: 30,
		Priority:    "High",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "New", lead.Status) // default when unset
	assert.Equal(t, []string{}, lead.Tags)
	assert.Nil(t, lead.ClosedAt)
	leads.AssertExpectations(t)
}

func TestCreateLeadMissingName(t *testing.T) {
	leads := new(MockLeadRepository)
	agents := new(MockSalesAgentRepository)

	uc := usecase.NewCreateLeadUseCase(leads, agents, nil)
	_, err := uc.Execute(context.Background(), usecase.CreateLeadInput{
		Source:     "Website",
		SalesAgent: uuid.New().String(),
	})

	var domainErr *usecase.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, usecase.CodeValidation, domainErr.Code)
	assert.Contains(t, domainErr.Message, "'name'")
	leads.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateLeadInvalidSource(t *testing.T) {
	uc := usecase.NewCreateLeadUseCase(new(MockLeadRepository), new(MockSalesAgentRepository), nil)

	_, err := uc.Execute(context.Background(), usecase.CreateLeadInput{
		Name:       "Acme Corp",
		Source:     "Billboard",
		SalesAgent: uuid.New().String(),
	})

	var domainErr *usecase.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, usecase.CodeValidation, domainErr.Code)
	assert.Contains(t, domainErr.Message, "Website, Referral, Cold Call, Advertisement, Email, Other")
}

func TestCreateLeadUnknownAgent(t *testing.T) {
	agentID := uuid.New().String()

	agents := new(MockSalesAgentRepository)
	agents.On("FindByID", mock.Anything, agentID).Return(nil, entity.ErrAgentNotFound)

	leads := new(MockLeadRepository)

	uc := usecase.NewCreateLeadUseCase(leads, agents, nil)
	lead, err := uc.Execute(context.Background(), usecase.CreateLeadInput{
		Name:       "Acme Corp",
		Source:     "Website",
		SalesAgent: agentID,
	})

	assert.Nil(t, lead)
	var domainErr *usecase.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, usecase.CodeNotFound, domainErr.Code)
	assert.Contains(t, domainErr.Message, agentID)
	leads.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateLeadNegativeTimeToClose(t *testing.T) {
	uc := usecase.NewCreateLeadUseCase(new(MockLeadRepository), new(MockSalesAgentRepository), nil)

	_, err := uc.Execute(context.Background(), usecase.CreateLeadInput{
		Name:        "Acme Corp",
		Source:      "Website",
		SalesAgent:  uuid.New().String(),
		TimeToClose: -5,
	})

	var domainErr *usecase.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, usecase.CodeValidation, domainErr.Code)
}

func TestCreateLeadNotifiesAssignedAgent(t *testing.T) {
	agent := entity.NewSalesAgent("Jane", "jane@corp.com")

	agents := new(MockSalesAgentRepository)
	agents.On("FindByID", mock.Anything, agent.ID).Return(agent, nil)

	leads := new(MockLeadRepository)
	leads.On("Create", mock.Anything, mock.Anything).Return(nil)

	notifier := new(MockAgentNotifier)
	notifier.On("SendLeadAssigned", "jane@corp.com", "Jane", "Acme Corp").Return(nil)

	uc := usecase.NewCreateLeadUseCase(leads, agents, notifier)
	_, err := uc.Execute(context.Background(), usecase.CreateLeadInput{
		Name:       "Acme Corp",
		Source:     "Website",
		SalesAgent: agent.ID,
	})

	assert.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestCreateLeadNotifierFailureDoesNotFailRequest(t *testing.T) {
	agent := entity.NewSalesAgent("Jane", "jane@corp.com")

	agents := new(MockSalesAgentRepository)
	agents.On("FindByID", mock.Anything, agent.ID).Return(agent, nil)

	leads := new(MockLeadRepository)
	leads.On("Create", mock.Anything, mock.Anything).Return(nil)

	notifier := new(MockAgentNotifier)
	notifier.On("SendLeadAssigned", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	uc := usecase.NewCreateLeadUseCase(leads, agents, notifier)
	lead, err := uc.Execute(context.Background(), usecase.CreateLeadInput{
		Name:       "Acme Corp",
		Source:     "Website",
		SalesAgent: agent.ID,
	})

	assert.NoError(t, err)
	assert.NotNil(t, lead)
}
