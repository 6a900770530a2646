package mappers

import (
	"strings"
	"testing"
	"time"

	"rips-service/internal/app/models"
	"rips-service/internal/app/services/core/rips/schema"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T, version models.FormatVersion) *schema.Registry {
	registry, err := schema.For(version)
	require.NoError(t, err)
	return registry
}

func testContext(t *testing.T, version models.FormatVersion) Context {
	return Context{
		Registry: testRegistry(t, version),
		Provider: models.Provider{
			Code:             "110010000001",
			HabilitationCode: "110010000001",
			Name:             "IPS Salud Integral",
			DocumentType:     "NI",
			DocumentNumber:   "900123456",
		},
		RemissionDate: time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
		Invoice: models.Invoice{
			Prefix:      "FE",
			Number:      "1001",
			IssueDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			PeriodStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			PeriodEnd:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			TotalValue:  decimal.NewFromInt(45000),
		},
		Entity: &models.Entity{Code: "EPS001", Name: "EPS Sanitas"},
	}
}

func testPatient() models.Patient {
	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	return models.Patient{
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
}

func testConsultation() models.Service {
	return models.Service{
		Type:          models.ServiceTypeConsultation,
		Code:          "890201",
		Date:          time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		DiagnosisCode: "Z000",
		Value:         decimal.NewFromInt(50000),
		ModeratingFee: decimal.NewFromInt(5000),
	}
}

func assertExactFields(t *testing.T, registry *schema.Registry, code string, record models.Record) {
	fields := registry.GetFileStructure(code)
	require.NotEmpty(t, fields)
	assert.Len(t, record, len(fields))
	for _, field := range fields {
		_, ok := record[field.Name]
		assert.True(t, ok, "field %s should be present in %s", field.Name, code)
	}
}

func TestMapPatient(t *testing.T) {
	t.Run("Legacy Users Record", func(t *testing.T) {
		ctx := testContext(t, models.FormatVersionLegacy)
		record := MapPatient(ctx, testPatient())

		assertExactFields(t, ctx.Registry, "US", record)
		assert.Equal(t, "CC", record[schema.FieldDocumentType])
		assert.Equal(t, "123", record[schema.FieldDocumentNumber])
		assert.Equal(t, "Ana", record[schema.FieldFirstName])
		assert.Equal(t, "Gomez", record[schema.FieldFirstLastName])
		assert.Equal(t, "F", record[schema.FieldGender])
		assert.Equal(t, "EPS001", record[schema.FieldEntityCode])
		assert.Equal(t, 34, record[schema.FieldAge])
		assert.Equal(t, "1", record[schema.FieldAgeUnit])
		assert.Equal(t, "11", record[schema.FieldDepartmentCode])
		assert.Equal(t, "001", record[schema.FieldMunicipalityCode])
		assert.Equal(t, "U", record[schema.FieldZone])
		assert.Equal(t, "1", record[schema.FieldUserType])
	})

	t.Run("Current Users Record", func(t *testing.T) {
		ctx := testContext(t, models.FormatVersionCurrent)
		record := MapPatient(ctx, testPatient())

		assertExactFields(t, ctx.Registry, "USCT", record)
		assert.Equal(t, "11001", record[schema.FieldMunicipalityCode])
		assert.Equal(t, "01", record[schema.FieldZone])
		assert.Equal(t, "01", record[schema.FieldUserType])
		assert.Equal(t, "170", record[schema.FieldCountryCode])
		assert.Equal(t, "NO", record[schema.FieldDisability])
		_, hasAge := record[schema.FieldAge]
		assert.False(t, hasAge, "current users file has no age field")
	})

	t.Run("Legacy Splits Combined Municipality", func(t *testing.T) {
		ctx := testContext(t, models.FormatVersionLegacy)
		patient := testPatient()
		patient.DepartmentCode = ""
		patient.MunicipalityCode = "05001"
		record := MapPatient(ctx, patient)
		assert.Equal(t, "05", record[schema.FieldDepartmentCode])
		assert.Equal(t, "001", record[schema.FieldMunicipalityCode])
	})

	t.Run("Document Type Is Normalized", func(t *testing.T) {
		ctx := testContext(t, models.FormatVersionCurrent)
		patient := testPatient()
		patient.DocumentType = " cc "

		record := MapPatient(ctx, patient)
		assert.Equal(t, "CC", record[schema.FieldDocumentType])
		assert.Equal(t, testPatient().Key(), patient.Key())

		_, service := MapService(ctx, testConsultation(), &patient)
		assert.Equal(t, "CC", service[schema.FieldDocumentType])
	})

	t.Run("Names Are Cut At Field Length", func(t *testing.T) {
		ctx := testContext(t, models.FormatVersionLegacy)
		patient := testPatient()
		patient.FirstName = "Maximiliana Antonieta Josefina"
		record := MapPatient(ctx, patient)
		assert.Equal(t, "Maximiliana Antoniet", record[schema.FieldFirstName])
	})

	t.Run("Missing Birth Date Leaves Age Empty", func(t *testing.T) {
		ctx := testContext(t, models.FormatVersionLegacy)
		patient := testPatient()
		patient.BirthDate = nil
		record := MapPatient(ctx, patient)
		assert.Equal(t, "", record[schema.FieldAge])
		assert.Equal(t, "", record[schema.FieldBirthDate])
	})
}

func TestMapService(t *testing.T) {
	patient := testPatient()

	t.Run("Consultation Values", func(t *testing.T) {
		ctx := testContext(t, models.FormatVersionLegacy)
		code, record := MapService(ctx, testConsultation(), &patient)

		assert.Equal(t, "AC", code)
		assertExactFields(t, ctx.Registry, code, record)
		assert.Equal(t, "FE1001", record[schema.FieldInvoiceNumber])
		assert.Equal(t, "110010000001", record[schema.FieldProviderCode])
		assert.Equal(t, "890201", record[schema.FieldConsultationCode])
		assert.True(t, decimal.NewFromInt(50000).Equal(record[schema.FieldConsultationValue].(decimal.Decimal)))
		assert.True(t, decimal.NewFromInt(5000).Equal(record[schema.FieldModeratingFee].(decimal.Decimal)))
		assert.True(t, decimal.NewFromInt(45000).Equal(record[schema.FieldNetValue].(decimal.Decimal)))
	})

	t.Run("Version Defaults", func(t *testing.T) {
		legacy := testContext(t, models.FormatVersionLegacy)
		_, record := MapService(legacy, testConsultation(), &patient)
		assert.Equal(t, "13", record[schema.FieldExternalCause])
		assert.Equal(t, "10", record[schema.FieldConsultationPurpose])
		assert.Equal(t, "1", record[schema.FieldMainDiagnosisType])

		current := testContext(t, models.FormatVersionCurrent)
		code, record := MapService(current, testConsultation(), &patient)
		assert.Equal(t, "ACCT", code)
		assert.Equal(t, "38", record[schema.FieldExternalCause])
		assert.Equal(t, "01", record[schema.FieldMainDiagnosisType])
		assert.Equal(t, "02", record[schema.FieldCollectionConcept], "a moderating fee selects the fee concept")
	})

	t.Run("Source Codes Win Over Defaults", func(t *testing.T) {
		ctx := testContext(t, models.FormatVersionLegacy)
		service := testConsultation()
		service.ExternalCause = "01"
		_, record := MapService(ctx, service, &patient)
		assert.Equal(t, "01", record[schema.FieldExternalCause])
	})

	t.Run("Negative Net Value Is Kept", func(t *testing.T) {
		ctx := testContext(t, models.FormatVersionLegacy)
		service := testConsultation()
		service.ModeratingFee = decimal.NewFromInt(60000)
		_, record := MapService(ctx, service, &patient)
		assert.True(t, decimal.NewFromInt(-10000).Equal(record[schema.FieldNetValue].(decimal.Decimal)))
	})

	t.Run("Unknown Type Falls Back To Other Services", func(t *testing.T) {
		ctx := testContext(t, models.FormatVersionLegacy)
		service := models.Service{Type: "TELEMEDICINE", Code: "S01", Name: "Teleconsulta", Value: decimal.NewFromInt(20000)}
		code, record := MapService(ctx, service, &patient)
		assert.Equal(t, "AT", code)
		assert.Equal(t, 1, record[schema.FieldQuantity])
		assert.True(t, decimal.NewFromInt(20000).Equal(record[schema.FieldUnitValue].(decimal.Decimal)))
		assert.Equal(t, "1", record[schema.FieldServiceType])
	})

	t.Run("Missing Patient Leaves Identity Empty", func(t *testing.T) {
		ctx := testContext(t, models.FormatVersionLegacy)
		_, record := MapService(ctx, testConsultation(), nil)
		assert.Equal(t, "", record[schema.FieldDocumentType])
		assert.Equal(t, "", record[schema.FieldDocumentNumber])
	})

	t.Run("Every Variant Projects Onto Its Schema", func(t *testing.T) {
		admission := time.Date(2024, 3, 2, 8, 30, 0, 0, time.UTC)
		discharge := time.Date(2024, 3, 4, 14, 15, 0, 0, time.UTC)
		services := []models.Service{
			testConsultation(),
			{Type: models.ServiceTypeProcedure, Code: "871121", Value: decimal.NewFromInt(80000)},
			{Type: models.ServiceTypeEmergency, AdmissionDate: &admission, DischargeDate: &discharge},
			{Type: models.ServiceTypeHospitalization, AdmissionDate: &admission, DischargeDate: &discharge},
			{Type: models.ServiceTypeNewborn, Date: admission, GestationalAge: 38, Weight: 3200},
			{Type: models.ServiceTypeMedication, Code: "M01", Name: "Acetaminofen", Quantity: 10, UnitValue: decimal.NewFromInt(150)},
			{Type: models.ServiceTypeOther, Code: "T01", Name: "Traslado"},
		}
		for _, version := range []models.FormatVersion{models.FormatVersionLegacy, models.FormatVersionCurrent} {
			ctx := testContext(t, version)
			for _, service := range services {
				code, record := MapService(ctx, service, &patient)
				assert.Equal(t, RecordKindFor(service.Type), ctx.Registry.Kind(code))
				assertExactFields(t, ctx.Registry, code, record)
			}
		}
	})

	t.Run("Emergency Admission Clock", func(t *testing.T) {
		ctx := testContext(t, models.FormatVersionLegacy)
		admission := time.Date(2024, 3, 2, 8, 30, 0, 0, time.UTC)
		_, record := MapService(ctx, models.Service{Type: models.ServiceTypeEmergency, AdmissionDate: &admission}, &patient)
		assert.Equal(t, "08:30", record[schema.FieldAdmissionTime])
		assert.Equal(t, "", record[schema.FieldDischargeTime])
	})

	t.Run("Medication Total From Unit Value", func(t *testing.T) {
		ctx := testContext(t, models.FormatVersionLegacy)
		service := models.Service{Type: models.ServiceTypeMedication, Quantity: 10, UnitValue: decimal.NewFromInt(150)}
		_, record := MapService(ctx, service, &patient)
		assert.True(t, decimal.NewFromInt(1500).Equal(record[schema.FieldTotalValue].(decimal.Decimal)))
	})
}

func TestMapControl(t *testing.T) {
	t.Run("Invoice Transaction Record", func(t *testing.T) {
		ctx := testContext(t, models.FormatVersionLegacy)
		record := MapInvoice(ctx, 1)

		assertExactFields(t, ctx.Registry, "AF", record)
		assert.Equal(t, "FE1001", record[schema.FieldInvoiceNumber])
		assert.Equal(t, "AF", record[schema.FieldFileCode])
		assert.Equal(t, 1, record[schema.FieldRecordCount])
		assert.Equal(t, "EPS001", record[schema.FieldEntityCode])
		assert.Equal(t, "IPS Salud Integral", record[schema.FieldProviderName])
	})

	t.Run("Legacy Summary Has No Value", func(t *testing.T) {
		registry := testRegistry(t, models.FormatVersionLegacy)
		record := MapSummary(registry, models.Provider{Code: "P1"}, time.Now(), "AC", 3, decimal.NewFromInt(100))
		assert.Equal(t, "AC", record[schema.FieldFileCode])
		assert.Equal(t, 3, record[schema.FieldRecordCount])
		_, ok := record[schema.FieldTotalValue]
		assert.False(t, ok)
	})

	t.Run("Current Summary Carries Value", func(t *testing.T) {
		registry := testRegistry(t, models.FormatVersionCurrent)
		record := MapSummary(registry, models.Provider{Code: "P1"}, time.Now(), "ACCT", 3, decimal.NewFromInt(100))
		assert.True(t, decimal.NewFromInt(100).Equal(record[schema.FieldTotalValue].(decimal.Decimal)))

		users := MapSummary(registry, models.Provider{Code: "P1"}, time.Now(), "USCT", 2, decimal.Zero)
		assert.Equal(t, "", users[schema.FieldTotalValue], "users carry no monetary value")
	})
}

func TestFitToField(t *testing.T) {
	registry := testRegistry(t, models.FormatVersionLegacy)

	t.Run("Cuts And Trims", func(t *testing.T) {
		value := FitToField(registry, "AF", schema.FieldEntityName, "  "+strings.Repeat("A", 40)+"  ")
		assert.Equal(t, strings.Repeat("A", 30), value)
	})

	t.Run("Unknown Field Is Only Trimmed", func(t *testing.T) {
		assert.Equal(t, "abc", FitToField(registry, "AF", "desconocido", " abc "))
	})
}

func TestProject(t *testing.T) {
	fields := []models.FieldSpec{{Name: "a"}, {Name: "b"}}
	record := Project(models.Record{"a": 1, "b": nil, "c": "extra"}, fields)
	assert.Equal(t, models.Record{"a": 1, "b": ""}, record)
}
