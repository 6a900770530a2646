package validation

import (
	"strings"
	"testing"
	"time"

	"rips-service/internal/app/models"
	"rips-service/internal/app/services/core/rips/assembler"
	"rips-service/internal/app/services/core/rips/schema"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	remissionDate = time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	testProvider  = models.Provider{
		Code:             "110010000001",
		HabilitationCode: "110010000001",
		Name:             "IPS Salud Integral",
		DocumentType:     "NI",
		DocumentNumber:   "900123456",
	}
)

func registryFor(t *testing.T, version models.FormatVersion) *schema.Registry {
	registry, err := schema.For(version)
	require.NoError(t, err)
	return registry
}

func scenarioBatch() *models.BillingBatch {
	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	entity := models.Entity{ID: primitive.NewObjectID(), Code: "EPS001", Name: "EPS Sanitas"}
	patient := models.Patient{
		ID:             primitive.NewObjectID(),
		DocumentType:   "CC",
		DocumentNumber: "123",
		FirstName:      "Ana",
		LastName:       "Gomez",
		BirthDate:      &birth,
		Gender:         "F",
	}
	invoice := models.Invoice{
		ID:          primitive.NewObjectID(),
		Prefix:      "FE",
		Number:      "1001",
		IssueDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EntityID:    entity.ID,
		TotalValue:  decimal.NewFromInt(45000),
		PatientIDs:  []primitive.ObjectID{patient.ID},
	}
	service := models.Service{
		ID:            primitive.NewObjectID(),
		InvoiceID:     invoice.ID,
		PatientID:     patient.ID,
		Type:          models.ServiceTypeConsultation,
		Code:          "890201",
		Date:          invoice.IssueDate,
		Value:         decimal.NewFromInt(50000),
		ModeratingFee: decimal.NewFromInt(5000),
	}
	return &models.BillingBatch{
		Invoices: []models.Invoice{invoice},
		Patients: []models.Patient{patient},
		Services: []models.Service{service},
		Entities: []models.Entity{entity},
	}
}

func buildDataset(t *testing.T, version models.FormatVersion, batch *models.BillingBatch) (*schema.Registry, *models.RipsDataset) {
	registry := registryFor(t, version)
	builder := assembler.NewBuilder(registry, testProvider, remissionDate, assembler.FirstWins)
	builder.AddBatch(batch)
	return registry, builder.Dataset()
}

func containing(messages []string, fragment string) []string {
	var matches []string
	for _, message := range messages {
		if strings.Contains(message, fragment) {
			matches = append(matches, message)
		}
	}
	return matches
}

func TestValidateGeneratedDataset(t *testing.T) {
	for _, version := range []models.FormatVersion{models.FormatVersionLegacy, models.FormatVersionCurrent} {
		t.Run("Valid "+string(version), func(t *testing.T) {
			registry, dataset := buildDataset(t, version, scenarioBatch())

			result := New(registry, nil).Validate(dataset)

			assert.True(t, result.IsValid, result.Errors)
			assert.Empty(t, result.Errors)
			assert.Empty(t, result.Warnings)
		})
	}

	t.Run("Does Not Mutate Dataset", func(t *testing.T) {
		registry, dataset := buildDataset(t, models.FormatVersionLegacy, scenarioBatch())
		dataset.Records["US"][0][schema.FieldDocumentType] = "cc  "
		before := len(dataset.Records["US"][0])

		New(registry, nil).Validate(dataset)

		assert.Equal(t, "cc  ", dataset.Records["US"][0][schema.FieldDocumentType])
		assert.Len(t, dataset.Records["US"][0], before)
	})
}

func TestValidatePresence(t *testing.T) {
	t.Run("Empty Dataset Misses Control And Users", func(t *testing.T) {
		registry := registryFor(t, models.FormatVersionCurrent)

		result := New(registry, nil).Validate(models.NewRipsDataset(models.FormatVersionCurrent))

		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 2)
		assert.Contains(t, result.Errors[0], "AFCT")
		assert.Contains(t, result.Errors[1], "USCT")
	})

	t.Run("Missing Users File", func(t *testing.T) {
		registry, dataset := buildDataset(t, models.FormatVersionLegacy, scenarioBatch())
		delete(dataset.Records, "US")

		result := New(registry, nil).Validate(dataset)

		assert.False(t, result.IsValid)
		assert.Len(t, containing(result.Errors, "record type US is mandatory"), 1)
	})
}

func TestValidateReferences(t *testing.T) {
	t.Run("Service For Unknown User", func(t *testing.T) {
		registry, dataset := buildDataset(t, models.FormatVersionLegacy, scenarioBatch())
		dataset.Records["AC"][0][schema.FieldDocumentNumber] = "999"

		result := New(registry, nil).Validate(dataset)

		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "AC[0]")
		assert.Contains(t, result.Errors[0], "CC-999")
	})

	t.Run("One Error Per Offending Record", func(t *testing.T) {
		registry, dataset := buildDataset(t, models.FormatVersionCurrent, scenarioBatch())
		stray := models.Record{}
		for key, value := range dataset.Records["ACCT"][0] {
			stray[key] = value
		}
		stray[schema.FieldDocumentType] = "TI"
		dataset.Append("ACCT", stray)
		dataset.Append("ACCT", stray)

		result := New(registry, nil).Validate(dataset)

		references := containing(result.Errors, "is not present in USCT")
		require.Len(t, references, 2)
		assert.Contains(t, references[0], "ACCT[1]")
		assert.Contains(t, references[1], "ACCT[2]")
	})
}

func TestValidateFields(t *testing.T) {
	t.Run("Invalid Birth Date", func(t *testing.T) {
		registry, dataset := buildDataset(t, models.FormatVersionLegacy, scenarioBatch())
		dataset.Records["US"][0][schema.FieldBirthDate] = "01/01/1990"

		result := New(registry, nil).Validate(dataset)

		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "US[0]")
		assert.Contains(t, result.Errors[0], schema.FieldBirthDate)
	})

	t.Run("Missing Birth Date", func(t *testing.T) {
		registry, dataset := buildDataset(t, models.FormatVersionCurrent, scenarioBatch())
		dataset.Records["USCT"][0][schema.FieldBirthDate] = nil

		result := New(registry, nil).Validate(dataset)

		assert.Len(t, containing(result.Errors, "field fecha_nacimiento is required"), 1)
	})

	t.Run("Unknown Document Type", func(t *testing.T) {
		registry, dataset := buildDataset(t, models.FormatVersionLegacy, scenarioBatch())
		for _, code := range []string{"US", "AC"} {
			dataset.Records[code][0][schema.FieldDocumentType] = "XX"
		}

		result := New(registry, nil).Validate(dataset)

		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], `unknown document type "XX"`)
	})

	t.Run("Missing Provider Code On Control Records", func(t *testing.T) {
		registry, dataset := buildDataset(t, models.FormatVersionLegacy, scenarioBatch())
		for _, record := range dataset.Records["AF"] {
			record[schema.FieldProviderCode] = ""
		}

		result := New(registry, nil).Validate(dataset)

		assert.Len(t, containing(result.Errors, "field codigo_prestador is required"), dataset.Count("AF"))
	})

	t.Run("Missing Habilitation Code Where The Version Has It", func(t *testing.T) {
		registry, dataset := buildDataset(t, models.FormatVersionCurrent, scenarioBatch())
		dataset.Records["AFCT"][0][schema.FieldHabilitationCode] = ""

		result := New(registry, nil).Validate(dataset)

		assert.Len(t, containing(result.Errors, "AFCT[0]: field codigo_habilitacion is required"), 1)
	})

	t.Run("Invalid Remission Date", func(t *testing.T) {
		registry, dataset := buildDataset(t, models.FormatVersionLegacy, scenarioBatch())
		dataset.Records["AF"][0][schema.FieldRemissionDate] = "2024-13-40"

		result := New(registry, nil).Validate(dataset)

		assert.Len(t, containing(result.Errors, "AF[0]: field fecha_remision must be a date"), 1)
	})
}

func TestValidateWarnings(t *testing.T) {
	t.Run("Negative Net Value", func(t *testing.T) {
		batch := scenarioBatch()
		batch.Services[0].ModeratingFee = decimal.NewFromInt(60000)
		registry, dataset := buildDataset(t, models.FormatVersionLegacy, batch)

		result := New(registry, nil).Validate(dataset)

		assert.True(t, result.IsValid)
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "AC[0]: field valor_neto is negative")
	})

	t.Run("Summary Count Mismatch", func(t *testing.T) {
		registry, dataset := buildDataset(t, models.FormatVersionLegacy, scenarioBatch())
		dataset.Append("AC", dataset.Records["AC"][0])

		result := New(registry, nil).Validate(dataset)

		assert.True(t, result.IsValid)
		mismatches := containing(result.Warnings, "summary for AC declares 1 records but 2 were generated")
		assert.Len(t, mismatches, 1)
	})

	t.Run("Missing Summary", func(t *testing.T) {
		registry, dataset := buildDataset(t, models.FormatVersionLegacy, scenarioBatch())
		kept := dataset.Records["AF"][:0]
		for _, record := range dataset.Records["AF"] {
			if record[schema.FieldFileCode] != "AC" {
				kept = append(kept, record)
			}
		}
		dataset.Records["AF"] = kept

		result := New(registry, nil).Validate(dataset)

		assert.Equal(t, []string{"AF: no summary record for AC"}, result.Warnings)
	})

	t.Run("Carries Builder Warnings", func(t *testing.T) {
		batch := scenarioBatch()
		batch.Entities = nil
		registry, dataset := buildDataset(t, models.FormatVersionCurrent, batch)

		result := New(registry, nil).Validate(dataset)

		require.NotEmpty(t, result.Warnings)
		assert.Contains(t, result.Warnings[0], "unknown entity")
	})
}
