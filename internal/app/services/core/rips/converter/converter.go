package converter

import (
	"fmt"
	"time"

	"rips-service/internal/app/models"
	"rips-service/internal/app/services/core/rips/assembler"
	"rips-service/internal/app/services/core/rips/mappers"
	"rips-service/internal/app/services/core/rips/schema"
	"rips-service/internal/pkg/exceptions"
	"rips-service/internal/pkg/utils"
)

// Converter rewrites datasets from one format version into another. Record
// types are matched by kind and fields by name.
type Converter struct {
	Source   *schema.Registry
	Target   *schema.Registry
	Provider models.Provider
}

// New builds a converter between two versions. The provider fills identity
// fields the target carries and the source does not.
func New(source, target models.FormatVersion, provider models.Provider) (*Converter, error) {
	if source == target {
		return nil, exceptions.ErrConversionSameVersion(nil, string(source))
	}
	sourceRegistry, err := schema.For(source)
	if err != nil {
		return nil, err
	}
	targetRegistry, err := schema.For(target)
	if err != nil {
		return nil, err
	}
	return &Converter{Source: sourceRegistry, Target: targetRegistry, Provider: provider}, nil
}

// Convert is a shorthand for New(dataset.Version, target, provider).Convert(dataset).
func Convert(dataset *models.RipsDataset, target models.FormatVersion, provider models.Provider) (*models.RipsDataset, models.ConversionReport, error) {
	if dataset == nil {
		dataset = models.NewRipsDataset(target)
	}
	converter, err := New(dataset.Version, target, provider)
	if err != nil {
		return nil, models.ConversionReport{}, err
	}
	converted, report := converter.Convert(dataset)
	return converted, report, nil
}

// Convert returns a new dataset; the input is left untouched.
func (c *Converter) Convert(dataset *models.RipsDataset) (*models.RipsDataset, models.ConversionReport) {
	converted := models.NewRipsDataset(c.Target.Version)
	converted.Warnings = append(converted.Warnings, dataset.Warnings...)

	report := models.ConversionReport{
		From:          c.Source.Version,
		To:            c.Target.Version,
		DroppedFields: make(map[string][]string),
		MissingFields: make(map[string][]string),
	}

	reference := c.referenceDate(dataset)
	for _, sourceCode := range c.Source.Codes() {
		records := dataset.Get(sourceCode)
		if len(records) == 0 {
			continue
		}
		targetCode := c.Target.Code(c.Source.Kind(sourceCode))
		if targetCode == "" {
			report.DroppedFields[sourceCode] = fieldNames(c.Source.GetFileStructure(sourceCode))
			continue
		}

		if dropped := c.droppedFields(sourceCode, targetCode); len(dropped) > 0 {
			report.DroppedFields[sourceCode] = dropped
		}
		if missing := c.missingFields(sourceCode, targetCode); len(missing) > 0 {
			report.MissingFields[targetCode] = missing
		}

		for i, record := range records {
			converted.Append(targetCode, c.convertRecord(sourceCode, targetCode, record, i, reference))
		}
	}

	c.fillControlTotals(converted)
	return converted, report
}

func (c *Converter) convertRecord(sourceCode, targetCode string, record models.Record, index int, reference time.Time) models.Record {
	fields := c.Target.GetFileStructure(targetCode)
	converted := make(models.Record, len(fields))

	department, municipality := mappers.ResidenceCodes(c.Target, text(record[schema.FieldDepartmentCode]), text(record[schema.FieldMunicipalityCode]))
	birthDate, hasAge := dateValue(record[schema.FieldBirthDate])
	hasAge = hasAge && !reference.IsZero()
	age, ageUnit := utils.CalculateAgeAt(birthDate, reference)
	identity := c.identity(targetCode, record)

	for _, field := range fields {
		name := field.Name
		value, present := record[name]
		present = present && c.Source.HasField(sourceCode, name)

		switch {
		case name == schema.FieldDepartmentCode:
			converted[name] = department
		case name == schema.FieldMunicipalityCode:
			converted[name] = municipality
		case name == schema.FieldZone && present:
			converted[name] = c.Target.ZoneCode(c.Source.CanonicalZone(text(value)))
		case name == schema.FieldUserType && present:
			converted[name] = mappers.UserTypeCode(c.Target, text(value))
		case name == schema.FieldFileCode && present:
			converted[name] = c.convertCode(text(value))
		case name == schema.FieldSequence && !present:
			converted[name] = index + 1
		case name == schema.FieldAge && !present && hasAge:
			converted[name] = age
		case name == schema.FieldAgeUnit && !present && hasAge:
			converted[name] = ageUnit
		case present:
			converted[name] = value
		case identity[name] != nil:
			converted[name] = identity[name]
		default:
			converted[name] = c.fallback(name)
		}
	}
	return converted
}

// referenceDate is the remission date of the first control record. Ages
// rebuilt for versions that carry them are measured at that date.
func (c *Converter) referenceDate(dataset *models.RipsDataset) time.Time {
	for _, record := range dataset.Get(c.Source.ControlCode()) {
		if date, ok := dateValue(record[schema.FieldRemissionDate]); ok {
			return date
		}
	}
	return time.Time{}
}

// identity returns the provider fields of a target record, skipping the ones
// the provider leaves blank. A missing habilitation code falls back to the
// provider code of the source record.
func (c *Converter) identity(targetCode string, record models.Record) models.Record {
	identity := make(models.Record)
	for name, value := range mappers.ProviderFields(c.Target, c.Provider, targetCode) {
		if text(value) != "" {
			identity[name] = value
		}
	}
	if _, ok := identity[schema.FieldHabilitationCode]; !ok {
		if code := text(record[schema.FieldProviderCode]); code != "" {
			identity[schema.FieldHabilitationCode] = code
		}
	}
	return identity
}

func (c *Converter) fallback(name string) interface{} {
	if value, ok := c.Target.FieldDefault(name); ok {
		return value
	}
	return nil
}

// convertCode maps a record type code of the source version to the code the
// target version gives the same kind.
func (c *Converter) convertCode(code string) string {
	if converted := c.Target.Code(c.Source.Kind(code)); converted != "" {
		return converted
	}
	return code
}

// fillControlTotals computes valor_total where the target carries it and the
// source did not.
func (c *Converter) fillControlTotals(dataset *models.RipsDataset) {
	control := c.Target.ControlCode()
	if !c.Target.HasField(control, schema.FieldTotalValue) || c.Source.HasField(c.Source.ControlCode(), schema.FieldTotalValue) {
		return
	}

	for _, record := range dataset.Get(control) {
		code := text(record[schema.FieldFileCode])
		switch {
		case code == control:
			record[schema.FieldTotalValue] = record[schema.FieldNetValue]
		case c.Target.SummaryCarriesValue && c.Target.ValueField(code) != "":
			record[schema.FieldTotalValue] = assembler.SumField(dataset.Get(code), c.Target.ValueField(code))
		}
	}
}

func (c *Converter) droppedFields(sourceCode, targetCode string) []string {
	var dropped []string
	for _, field := range c.Source.GetFileStructure(sourceCode) {
		if c.Target.HasField(targetCode, field.Name) || c.derived(field.Name) {
			continue
		}
		dropped = append(dropped, field.Name)
	}
	return dropped
}

func (c *Converter) missingFields(sourceCode, targetCode string) []string {
	var missing []string
	for _, field := range c.Target.GetFileStructure(targetCode) {
		if c.Source.HasField(sourceCode, field.Name) || c.derived(field.Name) {
			continue
		}
		missing = append(missing, field.Name)
	}
	return missing
}

// derived reports fields whose value is rebuilt from other fields rather than
// copied.
func (c *Converter) derived(name string) bool {
	switch name {
	case schema.FieldDepartmentCode, schema.FieldSequence, schema.FieldAge, schema.FieldAgeUnit:
		return true
	case schema.FieldTotalValue:
		return c.Target.SummaryCarriesValue
	}
	return false
}

func fieldNames(fields []models.FieldSpec) []string {
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		names = append(names, field.Name)
	}
	return names
}

func dateValue(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	default:
		return utils.ParseFlexibleDate(text(value))
	}
}

func text(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	default:
		return fmt.Sprint(v)
	}
}
