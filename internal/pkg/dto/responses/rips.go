package responses

import (
	"rips-service/internal/app/models"
	"time"
)

// GenerationEvent is published once a generation run reaches a final status.
type GenerationEvent struct {
	Type         string                  `json:"type"`
	GenerationID string                  `json:"generation_id"`
	Version      models.FormatVersion    `json:"version"`
	Status       models.GenerationStatus `json:"status"`
	PeriodStart  string                  `json:"period_start"`
	PeriodEnd    string                  `json:"period_end"`
	Invoices     int                     `json:"invoices"`
	Files        []models.GeneratedFile  `json:"files"`
	IsValid      bool                    `json:"is_valid"`
	ErrorCount   int                     `json:"error_count"`
	WarningCount int                     `json:"warning_count"`
	Error        string                  `json:"error,omitempty"`
	FinishedAt   *time.Time              `json:"finished_at,omitempty"`
}

func NewGenerationEvent(eventType string, generation *models.Generation) GenerationEvent {
	event := GenerationEvent{
		Type:         eventType,
		GenerationID: generation.ID.String(),
		Version:      generation.Version,
		Status:       generation.Status,
		PeriodStart:  generation.PeriodStart.Format("2006-01-02"),
		PeriodEnd:    generation.PeriodEnd.Format("2006-01-02"),
		Invoices:     generation.Invoices,
		Files:        generation.Files,
		Error:        generation.Error,
		FinishedAt:   generation.FinishedAt,
	}
	if event.Files == nil {
		event.Files = []models.GeneratedFile{}
	}
	if generation.Validation != nil {
		event.IsValid = generation.Validation.IsValid
		event.ErrorCount = len(generation.Validation.Errors)
		event.WarningCount = len(generation.Validation.Warnings)
	}
	return event
}
