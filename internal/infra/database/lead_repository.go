package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/anvaya/crm-backend/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `id, name, source, sales_agent, status, tags, time_to_close, priority, closed_at, created_at, updated_at`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, source, sales_agent, status, tags, time_to_close, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Source,
		lead.SalesAgentID,
		lead.Status,
		pq.Array(lead.Tags),
		lead.TimeToClose,
		lead.Priority,
		lead.CreatedAt,
		lead.UpdatedAt,
	)

	return err
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}

	return lead, nil
}

// Find returns leads matching every set filter field, each with its sales
// agent joined. A dangling agent reference still yields the lead, with a
// nil agent.
func (r *LeadRepository) Find(ctx context.Context, filter entity.LeadFilter) ([]entity.LeadWithAgent, error) {
	query := `
		SELECT l.id, l.name, l.source, l.sales_agent, l.status, l.tags, l.time_to_close,
		       l.priority, l.closed_at, l.created_at, l.updated_at,
		       a.id, a.name, a.email, a.created_at
		FROM leads l
		LEFT JOIN sales_agents a ON a.id = l.sales_agent
	`

	var conds []string
	var args []interface{}

	if filter.SalesAgent != "" {
		args = append(args, filter.SalesAgent)
		conds = append(conds, fmt.Sprintf("l.sales_agent = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("l.status = $%d", len(args)))
	}
	if filter.Tag != "" {
		args = append(args, filter.Tag)
		conds = append(conds, fmt.Sprintf("$%d = ANY(l.tags)", len(args)))
	}
	if filter.Source != "" {
		args = append(args, filter.Source)
		conds = append(conds, fmt.Sprintf("l.source = $%d", len(args)))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY l.created_at"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []entity.LeadWithAgent{}
	for rows.Next() {
		var lw entity.LeadWithAgent
		var closedAt sql.NullTime
		var agentID, agentName, agentEmail sql.NullString
		var agentCreatedAt sql.NullTime

		err := rows.Scan(
			&lw.ID, &lw.Lead.Name, &lw.Source, &lw.SalesAgentID, &lw.Status,
			pq.Array(&lw.Tags), &lw.TimeToClose, &lw.Priority, &closedAt,
			&lw.Lead.CreatedAt, &lw.UpdatedAt,
			&agentID, &agentName, &agentEmail, &agentCreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if closedAt.Valid {
			t := closedAt.Time
			lw.ClosedAt = &t
		}
		if agentID.Valid {
			lw.SalesAgent = &entity.SalesAgent{
				ID:        agentID.String,
				Name:      agentName.String,
				Email:     agentEmail.String,
				CreatedAt: agentCreatedAt.Time,
			}
		}

		leads = append(leads, lw)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads
		SET name = $1, source = $2, sales_agent = $3, status = $4, tags = $5,
		    time_to_close = $6, priority = $7, closed_at = $8, updated_at = $9
		WHERE id = $10
	`

	res, err := r.DB.ExecContext(ctx, query,
		lead.Name,
		lead.Source,
		lead.SalesAgentID,
		lead.Status,
		pq.Array(lead.Tags),
		lead.TimeToClose,
		lead.Priority,
		lead.ClosedAt,
		lead.UpdatedAt,
		lead.ID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}

	return nil
}

// Delete removes the lead row only. Comments referencing it are left in
// place on purpose.
func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var closedAt sql.NullTime

	err := row.Scan(
		&lead.ID, &lead.Name, &lead.Source, &lead.SalesAgentID, &lead.Status,
		pq.Array(&lead.Tags), &lead.TimeToClose, &lead.Priority, &closedAt,
		&lead.CreatedAt, &lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if closedAt.Valid {
		t := closedAt.Time
		lead.ClosedAt = &t
	}

	return &lead, nil
}
