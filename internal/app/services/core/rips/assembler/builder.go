package assembler

import (
	"fmt"
	"rips-service/internal/app/models"
	"rips-service/internal/app/services/core/rips/mappers"
	"rips-service/internal/app/services/core/rips/schema"
	"rips-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DeduplicationPolicy decides what happens to a user seen more than once
// across the invoices of one generation run.
type DeduplicationPolicy int

const (
	// FirstWins keeps the first record of a user and silently drops the rest.
	FirstWins DeduplicationPolicy = iota
	// FirstWinsWithWarnings keeps the first record and reports every later
	// occurrence whose demographic data differs from it.
	FirstWinsWithWarnings
)

func (p DeduplicationPolicy) String() string {
	switch p {
	case FirstWinsWithWarnings:
		return "first-wins-with-warnings"
	default:
		return "first-wins"
	}
}

func ParseDeduplicationPolicy(value string) (DeduplicationPolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "first-wins":
		return FirstWins, true
	case "first-wins-with-warnings":
		return FirstWinsWithWarnings, true
	default:
		return FirstWins, false
	}
}

// Builder accumulates the mapped records of one generation run. It is not
// safe for concurrent use.
type Builder struct {
	Registry      *schema.Registry
	Provider      models.Provider
	RemissionDate time.Time
	Deduplication DeduplicationPolicy

	transactions []models.Record
	records      map[string][]models.Record
	users        map[models.PatientKey]models.Patient
	warnings     []string
}

func NewBuilder(registry *schema.Registry, provider models.Provider, remissionDate time.Time, policy DeduplicationPolicy) *Builder {
	return &Builder{
		Registry:      registry,
		Provider:      provider,
		RemissionDate: remissionDate,
		Deduplication: policy,
		records:       make(map[string][]models.Record),
		users:         make(map[models.PatientKey]models.Patient),
	}
}

// AddBatch adds every invoice of the batch in batch order.
func (b *Builder) AddBatch(batch *models.BillingBatch) {
	for _, invoice := range batch.Invoices {
		entity := batch.FindEntity(invoice.EntityID)
		patients, lines := batch.InvoiceLines(invoice)
		b.AddInvoice(invoice, entity, patients, lines)
	}
}

// AddInvoice maps one invoice with its users and service lines.
func (b *Builder) AddInvoice(invoice models.Invoice, entity *models.Entity, patients []*models.Patient, lines []models.ServiceLine) {
	ctx := mappers.Context{
		Registry:      b.Registry,
		Provider:      b.Provider,
		RemissionDate: b.RemissionDate,
		Invoice:       invoice,
		Entity:        entity,
	}
	if entity == nil {
		b.warnings = append(b.warnings, fmt.Sprintf(constvars.RipsMsgUnresolvedEntity, b.Registry.ControlCode(), invoice.FullNumber()))
	}

	for _, patient := range patients {
		if patient != nil {
			b.addUser(ctx, *patient)
		}
	}

	for _, line := range lines {
		if line.Patient == nil {
			b.warnings = append(b.warnings, fmt.Sprintf(constvars.RipsMsgUnresolvedPatient, b.Registry.UsersCode(), line.Service.ID.Hex(), invoice.FullNumber()))
		} else {
			b.addUser(ctx, *line.Patient)
		}
		code, record := mappers.MapService(ctx, line.Service, line.Patient)
		b.append(code, record)
	}

	b.transactions = append(b.transactions, mappers.MapInvoice(ctx, len(lines)))
}

func (b *Builder) addUser(ctx mappers.Context, patient models.Patient) {
	key := patient.Key()
	if first, seen := b.users[key]; seen {
		if b.Deduplication == FirstWinsWithWarnings && !samePatient(first, patient) {
			b.warnings = append(b.warnings, fmt.Sprintf(constvars.RipsMsgDuplicateUserConflict, b.Registry.UsersCode(), key.String()))
		}
		return
	}
	b.users[key] = patient
	b.append(b.Registry.UsersCode(), mappers.MapPatient(ctx, patient))
}

func (b *Builder) append(code string, record models.Record) {
	if _, ok := record[schema.FieldSequence]; ok {
		record[schema.FieldSequence] = len(b.records[code]) + 1
	}
	b.records[code] = append(b.records[code], record)
}

// Dataset returns the accumulated records. The control file holds one
// transaction record per invoice followed by one summary record per other
// non-empty record type, in registry order.
func (b *Builder) Dataset() *models.RipsDataset {
	dataset := models.NewRipsDataset(b.Registry.Version)
	control := b.Registry.ControlCode()

	for _, record := range b.transactions {
		dataset.Append(control, record)
	}

	var summaries []models.Record
	for _, code := range b.Registry.Codes() {
		if code == control || len(b.records[code]) == 0 {
			continue
		}
		for _, record := range b.records[code] {
			dataset.Append(code, record)
		}
		total := SumField(b.records[code], b.Registry.ValueField(code))
		summaries = append(summaries, mappers.MapSummary(b.Registry, b.Provider, b.RemissionDate, code, len(b.records[code]), total))
	}
	for _, summary := range summaries {
		dataset.Append(control, summary)
	}

	dataset.Warnings = append(dataset.Warnings, b.warnings...)
	return dataset
}

// SumField adds up a monetary field over records. Values that are not
// numeric count as zero.
func SumField(records []models.Record, field string) decimal.Decimal {
	total := decimal.Zero
	if field == "" {
		return total
	}
	for _, record := range records {
		total = total.Add(DecimalValue(record[field]))
	}
	return total
}

func DecimalValue(value interface{}) decimal.Decimal {
	switch v := value.(type) {
	case decimal.Decimal:
		return v
	case *decimal.Decimal:
		if v != nil {
			return *v
		}
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case float64:
		return decimal.NewFromFloat(v)
	case string:
		if parsed, err := decimal.NewFromString(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	}
	return decimal.Zero
}

func samePatient(a, b models.Patient) bool {
	sameBirth := (a.BirthDate == nil && b.BirthDate == nil) ||
		(a.BirthDate != nil && b.BirthDate != nil && a.BirthDate.Equal(*b.BirthDate))
	return sameBirth &&
		strings.EqualFold(a.FirstName, b.FirstName) &&
		strings.EqualFold(a.SecondName, b.SecondName) &&
		strings.EqualFold(a.LastName, b.LastName) &&
		strings.EqualFold(a.SecondLastName, b.SecondLastName) &&
		strings.EqualFold(a.Gender, b.Gender)
}
