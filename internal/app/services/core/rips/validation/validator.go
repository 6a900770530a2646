package validation

import (
	"errors"
	"fmt"
	"strings"

	"rips-service/internal/app/models"
	"rips-service/internal/app/services/core/rips/formatter"
	"rips-service/internal/app/services/core/rips/schema"
	"rips-service/internal/pkg/constvars"
	"rips-service/internal/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type fieldRule struct {
	field string
	tag   string
}

// Validator checks a dataset across its record types. It never mutates the
// dataset and reports problems in record order.
type Validator struct {
	Registry  *schema.Registry
	Formatter *formatter.Formatter

	rules map[string][]fieldRule
}

func New(registry *schema.Registry, fieldFormatter *formatter.Formatter) *Validator {
	if fieldFormatter == nil {
		fieldFormatter = formatter.Default()
	}
	v := &Validator{
		Registry:  registry,
		Formatter: fieldFormatter,
	}
	v.rules = map[string][]fieldRule{
		registry.ControlCode(): v.controlRules(),
		registry.UsersCode():   v.userRules(),
	}
	return v
}

func (v *Validator) controlRules() []fieldRule {
	code := v.Registry.ControlCode()
	rules := []fieldRule{
		{field: schema.FieldProviderCode, tag: "required"},
	}
	if v.Registry.HasField(code, schema.FieldHabilitationCode) {
		rules = append(rules, fieldRule{field: schema.FieldHabilitationCode, tag: "required"})
	}
	rules = append(rules,
		fieldRule{field: schema.FieldRemissionDate, tag: "required,rips_date"},
		fieldRule{field: schema.FieldFileCode, tag: "required"},
	)
	return append(rules, v.dateRules(code, schema.FieldRemissionDate)...)
}

func (v *Validator) userRules() []fieldRule {
	code := v.Registry.UsersCode()
	rules := []fieldRule{
		{field: schema.FieldDocumentType, tag: "required,oneof=" + strings.Join(v.Registry.DocumentTypes, " ")},
		{field: schema.FieldDocumentNumber, tag: "required"},
		{field: schema.FieldBirthDate, tag: "required,rips_date"},
	}
	return append(rules, v.dateRules(code, schema.FieldBirthDate)...)
}

// dateRules checks the format of every other date field of a record type
// without requiring it.
func (v *Validator) dateRules(code string, except string) []fieldRule {
	var rules []fieldRule
	for _, field := range v.Registry.GetFileStructure(code) {
		if field.Type == models.FieldTypeDate && field.Name != except {
			rules = append(rules, fieldRule{field: field.Name, tag: "rips_date"})
		}
	}
	return rules
}

// Validate runs the presence, referential and per-field checks, in that
// order, and collects the warnings of the dataset.
func (v *Validator) Validate(dataset *models.RipsDataset) models.ValidationResult {
	result := models.ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}

	result.Errors = append(result.Errors, v.checkPresence(dataset)...)
	result.Errors = append(result.Errors, v.checkReferences(dataset)...)
	result.Errors = append(result.Errors, v.checkFields(dataset)...)

	if dataset != nil {
		result.Warnings = append(result.Warnings, dataset.Warnings...)
	}
	result.Warnings = append(result.Warnings, v.checkNetValues(dataset)...)
	result.Warnings = append(result.Warnings, v.checkSummaries(dataset)...)

	result.IsValid = len(result.Errors) == 0
	return result
}

func (v *Validator) checkPresence(dataset *models.RipsDataset) []string {
	var problems []string
	for _, code := range v.Registry.MandatoryCodes() {
		if dataset.Count(code) == 0 {
			problems = append(problems, fmt.Sprintf(constvars.RipsMsgMissingMandatoryFile, code))
		}
	}
	return problems
}

func (v *Validator) checkReferences(dataset *models.RipsDataset) []string {
	usersCode := v.Registry.UsersCode()
	known := make(map[models.PatientKey]struct{}, dataset.Count(usersCode))
	for _, record := range dataset.Get(usersCode) {
		known[v.userKey(usersCode, record)] = struct{}{}
	}

	var problems []string
	for _, code := range v.Registry.Codes() {
		if code == usersCode || !v.carriesUserKey(code) {
			continue
		}
		for i, record := range dataset.Get(code) {
			key := v.userKey(code, record)
			if _, ok := known[key]; !ok {
				problems = append(problems, fmt.Sprintf(constvars.RipsMsgUnknownUserReference, code, i, key.DocumentType, key.DocumentNumber, usersCode))
			}
		}
	}
	return problems
}

func (v *Validator) carriesUserKey(code string) bool {
	return v.Registry.HasField(code, schema.FieldDocumentType) && v.Registry.HasField(code, schema.FieldDocumentNumber)
}

func (v *Validator) userKey(code string, record models.Record) models.PatientKey {
	return models.PatientKey{
		DocumentType:   v.formatted(code, record, schema.FieldDocumentType),
		DocumentNumber: v.formatted(code, record, schema.FieldDocumentNumber),
	}
}

func (v *Validator) checkFields(dataset *models.RipsDataset) []string {
	var problems []string
	for _, code := range []string{v.Registry.ControlCode(), v.Registry.UsersCode()} {
		rules := v.rules[code]
		for i, record := range dataset.Get(code) {
			for _, rule := range rules {
				value := v.formatted(code, record, rule.field)
				if err := utils.ValidateVar(value, rule.tag); err != nil {
					problems = append(problems, fieldMessage(err, code, i, rule.field, value))
				}
			}
		}
	}
	return problems
}

func (v *Validator) checkNetValues(dataset *models.RipsDataset) []string {
	var warnings []string
	for _, code := range v.Registry.Codes() {
		if code == v.Registry.ControlCode() || !v.Registry.HasField(code, schema.FieldNetValue) {
			continue
		}
		for i, record := range dataset.Get(code) {
			value := v.formatted(code, record, schema.FieldNetValue)
			net, err := decimal.NewFromString(value)
			if err == nil && net.IsNegative() {
				warnings = append(warnings, fmt.Sprintf(constvars.RipsMsgNegativeNetValue, code, i, schema.FieldNetValue, value))
			}
		}
	}
	return warnings
}

// checkSummaries compares the per record type summaries of the control file
// against the records actually present.
func (v *Validator) checkSummaries(dataset *models.RipsDataset) []string {
	control := v.Registry.ControlCode()
	summarized := make(map[string]bool)

	var warnings []string
	for i, record := range dataset.Get(control) {
		code := v.formatted(control, record, schema.FieldFileCode)
		if code == "" || code == control {
			continue
		}
		summarized[code] = true
		declared := v.formatted(control, record, schema.FieldRecordCount)
		if declared != fmt.Sprint(dataset.Count(code)) {
			warnings = append(warnings, fmt.Sprintf(constvars.RipsMsgSummaryCountMismatch, control, i, code, declared, dataset.Count(code)))
		}
	}

	if dataset.Count(control) == 0 {
		return warnings
	}
	for _, code := range v.Registry.Codes() {
		if code != control && dataset.Count(code) > 0 && !summarized[code] {
			warnings = append(warnings, fmt.Sprintf(constvars.RipsMsgMissingSummary, control, code))
		}
	}
	return warnings
}

func (v *Validator) formatted(code string, record models.Record, name string) string {
	field, ok := v.Registry.Field(code, name)
	if !ok {
		return ""
	}
	return v.Formatter.Format(record[name], field)
}

func fieldMessage(err error, code string, index int, field, value string) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Sprintf(constvars.RipsMsgFieldInvalid, code, index, field)
	}
	switch validationErrors[0].Tag() {
	case "required":
		return fmt.Sprintf(constvars.RipsMsgFieldRequired, code, index, field)
	case "rips_date":
		return fmt.Sprintf(constvars.RipsMsgFieldInvalidDate, code, index, field, value)
	case "oneof":
		return fmt.Sprintf(constvars.RipsMsgFieldInvalidDocType, code, index, field, value)
	default:
		return fmt.Sprintf(constvars.RipsMsgFieldInvalid, code, index, field)
	}
}
