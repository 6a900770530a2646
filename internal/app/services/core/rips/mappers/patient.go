package mappers

import (
	"rips-service/internal/app/models"
	"rips-service/internal/app/services/core/rips/schema"
	"rips-service/internal/pkg/utils"
	"strings"
)

// MapPatient maps a patient into a record of the users file.
func MapPatient(ctx Context, patient models.Patient) models.Record {
	registry := ctx.Registry
	code := registry.UsersCode()

	record := models.Record{
		schema.FieldDocumentType:   models.NormalizeDocumentType(patient.DocumentType),
		schema.FieldDocumentNumber: strings.TrimSpace(patient.DocumentNumber),
		schema.FieldEntityCode:     ctx.entityCode(),
		schema.FieldUserType:       UserTypeCode(registry, patient.RegimeType),
		schema.FieldFirstLastName:  FitToField(registry, code, schema.FieldFirstLastName, patient.LastName),
		schema.FieldSecondLastName: FitToField(registry, code, schema.FieldSecondLastName, patient.SecondLastName),
		schema.FieldFirstName:      FitToField(registry, code, schema.FieldFirstName, patient.FirstName),
		schema.FieldSecondName:     FitToField(registry, code, schema.FieldSecondName, patient.SecondName),
		schema.FieldGender:         firstChar(patient.Gender),
		schema.FieldZone:           registry.ZoneCode(patient.Zone),
		schema.FieldBirthDate:      optionalDate(patient.BirthDate),
		schema.FieldCountryCode:    orDefault(registry, schema.FieldCountryCode, patient.CountryCode),
		schema.FieldDisability:     orDefault(registry, schema.FieldDisability, patient.Disability),
	}

	if patient.BirthDate != nil && !patient.BirthDate.IsZero() {
		age, unit := utils.CalculateAgeAt(*patient.BirthDate, ctx.referenceDate())
		record[schema.FieldAge] = age
		record[schema.FieldAgeUnit] = unit
	}

	department, municipality := ResidenceCodes(registry, patient.DepartmentCode, patient.MunicipalityCode)
	record[schema.FieldDepartmentCode] = department
	record[schema.FieldMunicipalityCode] = municipality

	return Project(record, registry.GetFileStructure(code))
}

// ResidenceCodes splits or joins the DIVIPOLA codes according to the version.
// Versions with a combined municipality code expect the five digit code,
// the others a two digit department and a three digit municipality.
func ResidenceCodes(registry *schema.Registry, department, municipality string) (string, string) {
	department = strings.TrimSpace(department)
	municipality = strings.TrimSpace(municipality)

	if registry.CombinedMunicipalityCode {
		if len(municipality) == 3 && len(department) == 2 {
			return department, department + municipality
		}
		return department, municipality
	}

	if len(municipality) == 5 {
		if department == "" {
			department = municipality[:2]
		}
		municipality = municipality[2:]
	}
	return department, municipality
}

// UserTypeCode adapts the regime code to the width the version expects:
// "1" in the legacy users file, "01" in the current one.
func UserTypeCode(registry *schema.Registry, regime string) string {
	regime = strings.TrimSpace(regime)
	field, ok := registry.Field(registry.UsersCode(), schema.FieldUserType)
	if !ok || regime == "" {
		return regime
	}
	switch {
	case field.MaxLength == 2 && len(regime) == 1:
		return "0" + regime
	case field.MaxLength == 1 && len(regime) == 2 && regime[0] == '0':
		return regime[1:]
	default:
		return regime
	}
}
