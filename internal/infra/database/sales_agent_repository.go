package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"

	"github.com/anvaya/crm-backend/internal/entity"
)

type SalesAgentRepository struct {
	DB *sql.DB
}

func NewSalesAgentRepository(db *sql.DB) *SalesAgentRepository {
	return &SalesAgentRepository{DB: db}
}

func (r *SalesAgentRepository) Create(ctx context.Context, agent *entity.SalesAgent) error {
	query := `
		INSERT INTO sales_agents (id, name, email, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.DB.ExecContext(ctx, query,
		agent.ID,
		agent.Name,
		agent.Email,
		agent.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}

		log.Printf("sales_agents insert failed: %v", err)
		return err
	}

	return nil
}

func (r *SalesAgentRepository) FindByID(ctx context.Context, id string) (*entity.SalesAgent, error) {
	query := `SELECT id, name, email, created_at FROM sales_agents WHERE id = $1`

	var agent entity.SalesAgent
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&agent.ID,
		&agent.Name,
		&agent.Email,
		&agent.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrAgentNotFound
	}
	if err != nil {
		return nil, err
	}

	return &agent, nil
}

func (r *SalesAgentRepository) FindByEmail(ctx context.Context, email string) (*entity.SalesAgent, error) {
	query := `SELECT id, name, email, created_at FROM sales_agents WHERE email = $1`

	var agent entity.SalesAgent
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&agent.ID,
		&agent.Name,
		&agent.Email,
		&agent.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrAgentNotFound
	}
	if err != nil {
		return nil, err
	}

	return &agent, nil
}

func (r *SalesAgentRepository) FindAll(ctx context.Context) ([]entity.SalesAgent, error) {
	query := `SELECT id, name, email, created_at FROM sales_agents ORDER BY created_at`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	agents := []entity.SalesAgent{}
	for rows.Next() {
		var agent entity.SalesAgent
		if err := rows.Scan(&agent.ID, &agent.Name, &agent.Email, &agent.CreatedAt); err != nil {
			return nil, err
		}
		agents = append(agents, agent)
	}

	return agents, rows.Err()
}
