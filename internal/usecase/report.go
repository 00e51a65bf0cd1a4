package usecase

import (
	"time"

	"github.com/anvaya/crm-backend/internal/entity"
)

// Report folds. Each is a pure single pass over a full lead scan so the
// same code runs against the database result or an in-memory slice in
// tests. Nothing here is cached or materialized; every request recomputes.

type PipelineReport struct {
	Pipeline int `json:"pipeline"`
	Closed   int `json:"closed"`
}

// LeadsByStatus counts leads per status value actually present. Statuses
// with no leads do not appear in the map.
func LeadsByStatus(leads []entity.Lead) map[string]int {
	counts := make(map[string]int)
	for _, lead := range leads {
		counts[lead.Status]++
	}
	return counts
}

// PipelineSummary splits the collection into Closed leads and everything
// else. Any status that is not exactly "Closed" counts as pipeline.
func PipelineSummary(leads []entity.Lead) PipelineReport {
	var report PipelineReport
	for _, lead := range leads {
		if lead.IsClosed() {
			report.Closed++
		} else {
			report.Pipeline++
		}
	}
	return report
}

// ClosedByAgent maps agent display name to that agent's Closed-lead
// count. The key is initialized the first time the fold sees any lead
// owned by the agent, so an agent with open leads only still shows up
// with 0. Agents owning no leads never appear.
func ClosedByAgent(leads []entity.LeadWithAgent) map[string]int {
	counts := make(map[string]int)
	for _, lead := range leads {
		if lead.SalesAgent == nil {
			continue
		}
		name := lead.SalesAgent.Name
		if _, ok := counts[name]; !ok {
			counts[name] = 0
		}
		if lead.IsClosed() {
			counts[name]++
		}
	}
	return counts
}

// ClosedLastWeek returns the Closed leads touched within the seven days
// before now, inclusive lower bound. The window deliberately filters on
// UpdatedAt rather than ClosedAt; see DESIGN.md before changing that.
func ClosedLastWeek(leads []entity.Lead, now time.Time) []entity.Lead {
	cutoff := now.AddDate(0, 0, -7)
	recent := []entity.Lead{}
	for _, lead := range leads {
		if lead.IsClosed() && !lead.UpdatedAt.Before(cutoff) {
			recent = append(recent, lead)
		}
	}
	return recent
}
