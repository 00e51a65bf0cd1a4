package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/anvaya/crm-backend/internal/entity"
	"github.com/anvaya/crm-backend/internal/infra/queue"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Find(ctx context.Context, filter entity.LeadFilter) ([]entity.LeadWithAgent, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.LeadWithAgent), args.Error(1)
}

func (m *MockLeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSalesAgentRepository struct {
	mock.Mock
}

func (m *MockSalesAgentRepository) Create(ctx context.Context, agent *entity.SalesAgent) error {
	args := m.Called(ctx, agent)
	return args.Error(0)
}

func (m *MockSalesAgentRepository) FindByID(ctx context.Context, id string) (*entity.SalesAgent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SalesAgent), args.Error(1)
}

func (m *MockSalesAgentRepository) FindByEmail(ctx context.Context, email string) (*entity.SalesAgent, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SalesAgent), args.Error(1)
}

func (m *MockSalesAgentRepository) FindAll(ctx context.Context) ([]entity.SalesAgent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SalesAgent), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByLead(ctx context.Context, leadID string) ([]entity.Comment, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Comment), args.Error(1)
}

type MockLeadEventPublisher struct {
	mock.Mock
}

func (m *MockLeadEventPublisher) PublishLeadClosed(ctx context.Context, payload queue.LeadClosedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type MockAgentNotifier struct {
	mock.Mock
}

func (m *MockAgentNotifier) SendLeadAssigned(to, agentName, leadName string) error {
	args := m.Called(to, agentName, leadName)
	return args.Error(0)
}
