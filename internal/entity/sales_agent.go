package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type SalesAgent struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewSalesAgent(name, email string) *SalesAgent {
	return &SalesAgent{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}
}

type SalesAgentRepository interface {
	Create(ctx context.Context, agent *SalesAgent) error
	FindByID(ctx context.Context, id string) (*SalesAgent, error)
	FindByEmail(ctx context.Context, email string) (*SalesAgent, error)
	FindAll(ctx context.Context) ([]SalesAgent, error)
}
