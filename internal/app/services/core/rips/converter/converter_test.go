package converter

import (
	"errors"
	"testing"
	"time"

	"rips-service/internal/app/models"
	"rips-service/internal/app/services/core/rips/assembler"
	"rips-service/internal/app/services/core/rips/schema"
	"rips-service/internal/app/services/core/rips/validation"
	"rips-service/internal/pkg/exceptions"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	remissionDate = time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	testProvider  = models.Provider{Code: "110010000001", HabilitationCode: "110010000002", Name: "IPS Salud Integral", DocumentType: "NI", DocumentNumber: "900123456"}
)

func scenarioDataset(t *testing.T, version models.FormatVersion) *models.RipsDataset {
	registry, err := schema.For(version)
	require.NoError(t, err)

	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	entity := models.Entity{ID: primitive.NewObjectID(), Code: "EPS001", Name: "EPS Sanitas"}
	patient := models.Patient{
		ID:               primitive.NewObjectID(),
		DocumentType:     "CC",
		DocumentNumber:   "123",
		FirstName:        "Ana",
		LastName:         "Gomez",
		BirthDate:        &birth,
		Gender:           "F",
		DepartmentCode:   "11",
		MunicipalityCode: "001",
		Zone:             "U",
		RegimeType:       "1",
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

	builder := assembler.NewBuilder(registry, testProvider, remissionDate, assembler.FirstWins)
	builder.AddBatch(&models.BillingBatch{
		Invoices: []models.Invoice{invoice},
		Patients: []models.Patient{patient},
		Services: []models.Service{service},
		Entities: []models.Entity{entity},
	})
	return builder.Dataset()
}

func fileCodes(records []models.Record) []interface{} {
	codes := make([]interface{}, 0, len(records))
	for _, record := range records {
		codes = append(codes, record[schema.FieldFileCode])
	}
	return codes
}

func TestNewConverter(t *testing.T) {
	t.Run("Same Version Is Rejected", func(t *testing.T) {
		_, err := New(models.FormatVersionCurrent, models.FormatVersionCurrent, testProvider)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Contains(t, customErr.DevMessage, "2275")
	})

	t.Run("Unknown Version Is Rejected", func(t *testing.T) {
		_, err := New(models.FormatVersionLegacy, models.FormatVersion("1999"), testProvider)
		assert.Error(t, err)
	})

	t.Run("Dataset Version Is The Source", func(t *testing.T) {
		_, _, err := Convert(scenarioDataset(t, models.FormatVersionLegacy), models.FormatVersionLegacy, testProvider)
		assert.Error(t, err)
	})
}

func TestConvertLegacyToCurrent(t *testing.T) {
	source := scenarioDataset(t, models.FormatVersionLegacy)

	converted, report, err := Convert(source, models.FormatVersionCurrent, testProvider)
	require.NoError(t, err)
	registry, err := schema.For(models.FormatVersionCurrent)
	require.NoError(t, err)

	t.Run("Record Types Follow Their Kind", func(t *testing.T) {
		assert.Equal(t, models.FormatVersionCurrent, converted.Version)
		assert.Equal(t, source.Count("AF"), converted.Count("AFCT"))
		assert.Equal(t, 1, converted.Count("USCT"))
		assert.Equal(t, 1, converted.Count("ACCT"))
		assert.Zero(t, converted.Count("AF"))
	})

	t.Run("Records Carry Exactly The Target Fields", func(t *testing.T) {
		for code, records := range converted.Records {
			for _, record := range records {
				assert.Len(t, record, len(registry.GetFileStructure(code)), code)
			}
		}
	})

	t.Run("Control File Codes Are Remapped", func(t *testing.T) {
		assert.Equal(t, []interface{}{"AFCT", "USCT", "ACCT"}, fileCodes(converted.Get("AFCT")))
	})

	t.Run("Control Totals Are Computed", func(t *testing.T) {
		control := converted.Get("AFCT")
		assert.True(t, assembler.DecimalValue(control[0][schema.FieldTotalValue]).Equal(decimal.NewFromInt(45000)))
		assert.True(t, assembler.DecimalValue(control[2][schema.FieldTotalValue]).Equal(decimal.NewFromInt(45000)))
		assert.Nil(t, control[1][schema.FieldTotalValue])
	})

	t.Run("User Fields Are Translated", func(t *testing.T) {
		user := converted.Get("USCT")[0]
		assert.Equal(t, "11001", user[schema.FieldMunicipalityCode])
		assert.Equal(t, "01", user[schema.FieldZone])
		assert.Equal(t, "01", user[schema.FieldUserType])
		assert.Equal(t, 1, user[schema.FieldSequence])
		assert.Equal(t, "170", user[schema.FieldCountryCode])
		assert.Equal(t, "NO", user[schema.FieldDisability])
		assert.Equal(t, "123", user[schema.FieldDocumentNumber])
	})

	t.Run("Report Lists Dropped And Missing Fields", func(t *testing.T) {
		assert.False(t, report.Lossless())
		assert.Equal(t, models.FormatVersionLegacy, report.From)
		assert.Equal(t, models.FormatVersionCurrent, report.To)
		assert.Equal(t, []string{schema.FieldEntityCode}, report.DroppedFields["US"])
		assert.Contains(t, report.MissingFields["USCT"], schema.FieldCountryCode)
		assert.Contains(t, report.MissingFields["USCT"], schema.FieldDisability)
		assert.NotContains(t, report.MissingFields["USCT"], schema.FieldSequence)
		assert.NotContains(t, report.MissingFields["AFCT"], schema.FieldTotalValue)
		assert.Contains(t, report.MissingFields["AFCT"], schema.FieldHabilitationCode)
	})

	t.Run("Habilitation Code Comes From The Provider", func(t *testing.T) {
		for _, record := range converted.Get("AFCT") {
			assert.Equal(t, testProvider.HabilitationCode, record[schema.FieldHabilitationCode])
			assert.Equal(t, testProvider.Code, record[schema.FieldProviderCode])
		}
	})

	t.Run("Converted Dataset Is Valid", func(t *testing.T) {
		result := validation.New(registry, nil).Validate(converted)
		assert.True(t, result.IsValid, result.Errors)
	})

	t.Run("Source Is Untouched", func(t *testing.T) {
		assert.Equal(t, "U", source.Get("US")[0][schema.FieldZone])
		assert.Equal(t, "001", source.Get("US")[0][schema.FieldMunicipalityCode])
		assert.Equal(t, []interface{}{"AF", "US", "AC"}, fileCodes(source.Get("AF")))
	})
}

func TestConvertWithoutHabilitationCode(t *testing.T) {
	source := scenarioDataset(t, models.FormatVersionLegacy)
	provider := testProvider
	provider.HabilitationCode = ""

	converted, _, err := Convert(source, models.FormatVersionCurrent, provider)
	require.NoError(t, err)

	for _, record := range converted.Get("AFCT") {
		assert.Equal(t, testProvider.Code, record[schema.FieldHabilitationCode])
	}
}

func TestConvertCurrentToLegacy(t *testing.T) {
	source := scenarioDataset(t, models.FormatVersionCurrent)

	converted, report, err := Convert(source, models.FormatVersionLegacy, testProvider)
	require.NoError(t, err)

	t.Run("User Fields Are Translated", func(t *testing.T) {
		user := converted.Get("US")[0]
		assert.Equal(t, "11", user[schema.FieldDepartmentCode])
		assert.Equal(t, "001", user[schema.FieldMunicipalityCode])
		assert.Equal(t, "U", user[schema.FieldZone])
		assert.Equal(t, "1", user[schema.FieldUserType])
	})

	t.Run("Age Is Rebuilt From Birth Date", func(t *testing.T) {
		user := converted.Get("US")[0]
		assert.Equal(t, 34, user[schema.FieldAge])
		assert.Equal(t, "1", user[schema.FieldAgeUnit])
	})

	t.Run("Control File Codes Are Remapped", func(t *testing.T) {
		assert.Equal(t, []interface{}{"AF", "US", "AC"}, fileCodes(converted.Get("AF")))
	})

	t.Run("Converted Dataset Is Valid", func(t *testing.T) {
		registry, err := schema.For(models.FormatVersionLegacy)
		require.NoError(t, err)
		assert.True(t, validation.New(registry, nil).Validate(converted).IsValid)
	})

	t.Run("Report Lists Dropped Fields", func(t *testing.T) {
		assert.False(t, report.Lossless())
		assert.Contains(t, report.DroppedFields["AFCT"], schema.FieldTotalValue)
		assert.Contains(t, report.DroppedFields["AFCT"], schema.FieldHabilitationCode)
		assert.Contains(t, report.DroppedFields["USCT"], schema.FieldCountryCode)
		assert.NotContains(t, report.DroppedFields["USCT"], schema.FieldSequence)
		assert.Contains(t, report.MissingFields["US"], schema.FieldEntityCode)
		assert.NotContains(t, report.MissingFields["US"], schema.FieldAge)
	})
}

func TestConvertKeepsWarnings(t *testing.T) {
	source := models.NewRipsDataset(models.FormatVersionLegacy)
	source.Warnings = []string{"AF: invoice FE1 references an unknown entity"}

	converted, report, err := Convert(source, models.FormatVersionCurrent, testProvider)

	require.NoError(t, err)
	assert.Equal(t, source.Warnings, converted.Warnings)
	assert.True(t, report.Lossless())
	assert.Empty(t, converted.Records)
}
