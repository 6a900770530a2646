package mappers

import (
	"rips-service/internal/app/models"
	"rips-service/internal/app/services/core/rips/schema"
	"rips-service/internal/pkg/utils"
	"strings"
	"time"
	"unicode/utf8"
)

// Context carries everything a mapper needs besides the entity it maps.
// Provider identity is injected here instead of being read from the
// environment, so mappers stay pure.
type Context struct {
	Registry      *schema.Registry
	Provider      models.Provider
	RemissionDate time.Time
	Invoice       models.Invoice
	Entity        *models.Entity
}

func (c Context) entityCode() string {
	if c.Entity == nil {
		return ""
	}
	return c.Entity.Code
}

func (c Context) entityName() string {
	if c.Entity == nil {
		return ""
	}
	return c.Entity.Name
}

// referenceDate is the date ages are computed at.
func (c Context) referenceDate() time.Time {
	if !c.Invoice.IssueDate.IsZero() {
		return c.Invoice.IssueDate
	}
	return c.RemissionDate
}

// FitToField trims value and cuts it to the declared length of the field in
// the given record type. Fields the record type does not declare are returned
// trimmed but otherwise untouched.
func FitToField(registry *schema.Registry, code, name, value string) string {
	value = strings.TrimSpace(value)
	field, ok := registry.Field(code, name)
	if !ok || field.MaxLength <= 0 || utf8.RuneCountInString(value) <= field.MaxLength {
		return value
	}
	return strings.TrimSpace(string([]rune(value)[:field.MaxLength]))
}

// Project returns a record holding exactly the given fields in the given
// schema. Missing or nil values become empty strings, values for fields the
// schema does not declare are dropped.
func Project(record models.Record, fields []models.FieldSpec) models.Record {
	projected := make(models.Record, len(fields))
	for _, field := range fields {
		value, ok := record[field.Name]
		if !ok || value == nil {
			projected[field.Name] = ""
			continue
		}
		projected[field.Name] = value
	}
	return projected
}

func orDefault(registry *schema.Registry, name, value string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	if fallback, ok := registry.FieldDefault(name); ok {
		return fallback
	}
	return ""
}

func optionalDate(t *time.Time) interface{} {
	if t == nil || t.IsZero() {
		return ""
	}
	return *t
}

func optionalClock(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return utils.FormatRipsClock(*t)
}

func optionalInt(value int) interface{} {
	if value <= 0 {
		return ""
	}
	return value
}

func firstChar(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	if value == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(value)
	return string(r)
}
