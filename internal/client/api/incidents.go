package api

import (
	"context"
	"fmt"

	"github.com/ahmchowd27/safesnap-client/internal/client/models"
)

// CreateIncident files a new incident report.
func (g *Gateway) CreateIncident(ctx context.Context, draft *models.IncidentDraft) (*models.Incident, error) {
	var out models.Incident
	if err := g.Post(ctx, "/incidents", draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListIncidents returns the incidents visible to the current user: a worker
// sees their own reports, a manager sees everything.
func (g *Gateway) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	var out []models.Incident
	if err := g.Get(ctx, "/incidents", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Gateway) GetIncident(ctx context.Context, id int64) (*models.Incident, error) {
	var out models.Incident
	if err := g.Get(ctx, fmt.Sprintf("/incidents/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateIncidentStatus moves an incident through the triage workflow
// (e.g. OPEN → IN_PROGRESS → RESOLVED). Manager-only on the backend.
func (g *Gateway) UpdateIncidentStatus(ctx context.Context, id int64, status string) (*models.Incident, error) {
	var out models.Incident
	body := map[string]string{"status": status}
	if err := g.Patch(ctx, fmt.Sprintf("/incidents/%d/status", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateRCA asks the backend to start an AI-assisted root cause analysis
// for the incident. The report usually comes back PENDING; poll GetRCA.
func (g *Gateway) GenerateRCA(ctx context.Context, incidentID int64) (*models.RCAReport, error) {
	var out models.RCAReport
	if err := g.Post(ctx, fmt.Sprintf("/rca/%d/generate", incidentID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *Gateway) GetRCA(ctx context.Context, incidentID int64) (*models.RCAReport, error) {
	var out models.RCAReport
	if err := g.Get(ctx, fmt.Sprintf("/rca/%d", incidentID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
