package services

import (
	"context"
	"fmt"

	"github.com/ahmchowd27/safesnap-client/internal/client/models"
	"github.com/go-playground/validator/v10"
)

// IncidentAPI is the slice of the gateway the incident service needs.
type IncidentAPI interface {
	CreateIncident(ctx context.Context, draft *models.IncidentDraft) (*models.Incident, error)
	ListIncidents(ctx context.Context) ([]models.Incident, error)
	GetIncident(ctx context.Context, id int64) (*models.Incident, error)
	UpdateIncidentStatus(ctx context.Context, id int64, status string) (*models.Incident, error)
	GenerateRCA(ctx context.Context, incidentID int64) (*models.RCAReport, error)
	GetRCA(ctx context.Context, incidentID int64) (*models.RCAReport, error)
}

// Uploads is the read side of the upload coordinator: the URL snapshots an
// incident payload is built from.
type Uploads interface {
	ImageURLs() []string
	AudioURLs() []string
}

type IncidentService struct {
	api      IncidentAPI
	validate *validator.Validate
}

func NewIncidentService(api IncidentAPI) *IncidentService {
	return &IncidentService{api: api, validate: validator.New()}
}

// Report files the draft, attaching exactly the uploaded subset of the
// user's files. Failed uploads never reach the payload.
func (s *IncidentService) Report(ctx context.Context, draft models.IncidentDraft, uploads Uploads) (*models.Incident, error) {
	draft.ImageURLs = uploads.ImageURLs()
	draft.AudioURLs = uploads.AudioURLs()

	if err := s.validate.Struct(draft); err != nil {
		return nil, fmt.Errorf("invalid incident: %w", err)
	}
	return s.api.CreateIncident(ctx, &draft)
}

func (s *IncidentService) List(ctx context.Context) ([]models.Incident, error) {
	return s.api.ListIncidents(ctx)
}

func (s *IncidentService) Get(ctx context.Context, id int64) (*models.Incident, error) {
	return s.api.GetIncident(ctx, id)
}

func (s *IncidentService) SetStatus(ctx context.Context, id int64, status string) (*models.Incident, error) {
	return s.api.UpdateIncidentStatus(ctx, id, status)
}

// RequestRCA kicks off an AI root cause analysis for the incident.
func (s *IncidentService) RequestRCA(ctx context.Context, incidentID int64) (*models.RCAReport, error) {
	return s.api.GenerateRCA(ctx, incidentID)
}

func (s *IncidentService) RCA(ctx context.Context, incidentID int64) (*models.RCAReport, error) {
	return s.api.GetRCA(ctx, incidentID)
}
