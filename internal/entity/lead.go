package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const StatusClosed = "Closed"

type Lead struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Source       string     `json:"source"`
	SalesAgentID string     `json:"salesAgent"`
	Status       string     `json:"status"` // New, Contacted, Qualified, Proposal Sent, Closed
	Tags         []string   `json:"tags"`
	TimeToClose  int        `json:"timeToClose"`
	Priority     string     `json:"priority,omitempty"`
	ClosedAt     *time.Time `json:"closedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// LeadWithAgent is the read-side shape of a lead with the salesAgent
// reference resolved into the full agent object. The outer field shadows
// the embedded SalesAgentID under the same JSON key.
type LeadWithAgent struct {
	Lead
	SalesAgent *SalesAgent `json:"salesAgent"`
}

// LeadFilter holds the optional equality filters of GET /api/leads.
// Empty fields impose no constraint; set fields are ANDed together.
// Tag matches leads whose tag set contains the value.
type LeadFilter struct {
	SalesAgent string
	Status     string
	Tag        string
	Source     string
}

func NewLead(name, source, salesAgentID, status string, tags []string, timeToClose int, priority string) *Lead {
	if status == "" {
		status = "New"
	}
	if tags == nil {
		tags = []string{}
	}
	now := time.Now()
	return &Lead{
		ID:           uuid.New().String(),
		Name:         name,
		Source:       source,
		SalesAgentID: salesAgentID,
		Status:       status,
		Tags:         tags,
		TimeToClose:  timeToClose,
		Priority:     priority,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Close marks the lead Closed at the given instant. The transition is
// one-way: reopening a lead later does not clear ClosedAt.
func (l *Lead) Close(at time.Time) {
	l.Status = StatusClosed
	l.ClosedAt = &at
	l.TimeToClose = 0
}

func (l *Lead) IsClosed() bool {
	return l.Status == StatusClosed
}

type LeadRepository interface {
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id string) (*Lead, error)
	Find(ctx context.Context, filter LeadFilter) ([]LeadWithAgent, error)
	FindAll(ctx context.Context) ([]Lead, error)
	Update(ctx context.Context, lead *Lead) error
	Delete(ctx context.Context, id string) error
}
