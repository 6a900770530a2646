package models

import (
	"time"

	"github.com/google/uuid"
)

type FormatVersion string

const (
	FormatVersionLegacy  FormatVersion = "3374"
	FormatVersionCurrent FormatVersion = "2275"
)

type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeNumber FieldType = "number"
	FieldTypeDate   FieldType = "date"
)

type FieldSpec struct {
	Name      string
	Type      FieldType
	MaxLength int
}

// Record maps field names to raw, not yet formatted values.
type Record map[string]interface{}

// RipsDataset is the intermediate result of mapping, keyed by record type code.
type RipsDataset struct {
	Version  FormatVersion
	Records  map[string][]Record
	Warnings []string
}

func NewRipsDataset(version FormatVersion) *RipsDataset {
	return &RipsDataset{
		Version: version,
		Records: make(map[string][]Record),
	}
}

func (d *RipsDataset) Get(code string) []Record {
	if d == nil {
		return nil
	}
	return d.Records[code]
}

func (d *RipsDataset) Count(code string) int {
	return len(d.Get(code))
}

func (d *RipsDataset) Append(code string, record Record) {
	d.Records[code] = append(d.Records[code], record)
}

type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ConversionReport describes what a version conversion could not carry over.
// DroppedFields lists, per source record type, fields the target schema has no
// place for. MissingFields lists, per target record type, fields that had no
// source value and were left empty or defaulted.
type ConversionReport struct {
	From          FormatVersion       `json:"from"`
	To            FormatVersion       `json:"to"`
	DroppedFields map[string][]string `json:"droppedFields"`
	MissingFields map[string][]string `json:"missingFields"`
}

func (r ConversionReport) Lossless() bool {
	return len(r.DroppedFields) == 0
}

type GenerationStatus string

const (
	GenerationStatusPending    GenerationStatus = "pending"
	GenerationStatusProcessing GenerationStatus = "processing"
	GenerationStatusCompleted  GenerationStatus = "completed"
	GenerationStatusError      GenerationStatus = "error"
)

type GeneratedFile struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Records     int    `json:"records"`
	Location    string `json:"location,omitempty"`
	Content     []byte `json:"-"`
}

type Generation struct {
	ID            uuid.UUID         `json:"id"`
	Version       FormatVersion     `json:"version"`
	Status        GenerationStatus  `json:"status"`
	PeriodStart   time.Time         `json:"periodStart"`
	PeriodEnd     time.Time         `json:"periodEnd"`
	RemissionDate time.Time         `json:"remissionDate"`
	Invoices      int               `json:"invoices"`
	Files         []GeneratedFile   `json:"files"`
	Validation    *ValidationResult `json:"validation,omitempty"`
	Conversion    *ConversionReport `json:"conversion,omitempty"`
	StartedAt     time.Time         `json:"startedAt"`
	FinishedAt    *time.Time        `json:"finishedAt,omitempty"`
	Error         string            `json:"error,omitempty"`
}

func NewGeneration(version FormatVersion, periodStart, periodEnd time.Time) *Generation {
	return &Generation{
		ID:          uuid.New(),
		Version:     version,
		Status:      GenerationStatusPending,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		StartedAt:   time.Now(),
	}
}

func (g *Generation) MarkProcessing() {
	g.Status = GenerationStatusProcessing
}

func (g *Generation) MarkCompleted() {
	now := time.Now()
	g.Status = GenerationStatusCompleted
	g.FinishedAt = &now
}

func (g *Generation) MarkError(err error) {
	now := time.Now()
	g.Status = GenerationStatusError
	g.FinishedAt = &now
	if err != nil {
		g.Error = err.Error()
	}
}
