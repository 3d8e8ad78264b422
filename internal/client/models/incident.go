package models

import "time"

// IncidentDraft is what a worker submits. Attachment URLs come from the
// upload coordinator's uploaded subset; failed uploads never make it here.
type IncidentDraft struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	ImageURLs   []string `json:"imageUrls"`
	AudioURLs   []string `json:"audioUrls"`
}

type Incident struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	ImageURLs   []string  `json:"imageUrls"`
	AudioURLs   []string  `json:"audioUrls"`
	ReportedBy  string    `json:"reportedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RCAReport is the AI-assisted root cause analysis a manager requests for an
// incident. Status is PENDING until the backend finishes generating it.
type RCAReport struct {
	IncidentID  int64     `json:"incidentId"`
	Status      string    `json:"status"`
	Analysis    string    `json:"analysis"`
	GeneratedAt time.Time `json:"generatedAt"`
}
