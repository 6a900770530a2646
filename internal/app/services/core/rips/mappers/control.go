package mappers

import (
	"rips-service/internal/app/models"
	"rips-service/internal/app/services/core/rips/schema"
	"time"

	"github.com/shopspring/decimal"
)

// MapInvoice maps an invoice into its transaction record of the control
// file. lineCount is the number of service records the invoice produced.
func MapInvoice(ctx Context, lineCount int) models.Record {
	code := ctx.Registry.ControlCode()
	invoice := ctx.Invoice

	record := ProviderFields(ctx.Registry, ctx.Provider, code)
	record[schema.FieldInvoiceNumber] = invoice.FullNumber()
	record[schema.FieldIssueDate] = invoice.IssueDate
	record[schema.FieldPeriodStart] = invoice.PeriodStart
	record[schema.FieldPeriodEnd] = invoice.PeriodEnd
	record[schema.FieldEntityCode] = ctx.entityCode()
	record[schema.FieldEntityName] = FitToField(ctx.Registry, code, schema.FieldEntityName, ctx.entityName())
	record[schema.FieldContractNumber] = invoice.ContractNumber
	record[schema.FieldBenefitPlan] = FitToField(ctx.Registry, code, schema.FieldBenefitPlan, invoice.BenefitPlan)
	record[schema.FieldPolicyNumber] = invoice.PolicyNumber
	record[schema.FieldCopayment] = invoice.Copayment
	record[schema.FieldCommission] = invoice.Commission
	record[schema.FieldDiscounts] = invoice.Discounts
	record[schema.FieldNetValue] = invoice.TotalValue
	record[schema.FieldRemissionDate] = ctx.RemissionDate
	record[schema.FieldFileCode] = code
	record[schema.FieldRecordCount] = lineCount
	record[schema.FieldTotalValue] = invoice.TotalValue

	return Project(record, ctx.Registry.GetFileStructure(code))
}

// MapSummary maps the control record that summarizes one record type. The
// total is only carried by versions whose summaries declare a value field.
func MapSummary(registry *schema.Registry, provider models.Provider, remissionDate time.Time, summarized string, count int, total decimal.Decimal) models.Record {
	code := registry.ControlCode()

	record := ProviderFields(registry, provider, code)
	record[schema.FieldRemissionDate] = remissionDate
	record[schema.FieldFileCode] = summarized
	record[schema.FieldRecordCount] = count
	if registry.SummaryCarriesValue && registry.ValueField(summarized) != "" {
		record[schema.FieldTotalValue] = total
	}

	return Project(record, registry.GetFileStructure(code))
}

// ProviderFields returns the identity fields of the provider as they appear in
// records of the given type.
func ProviderFields(registry *schema.Registry, provider models.Provider, code string) models.Record {
	return models.Record{
		schema.FieldProviderCode:           provider.Code,
		schema.FieldHabilitationCode:       provider.HabilitationCode,
		schema.FieldProviderName:           FitToField(registry, code, schema.FieldProviderName, provider.Name),
		schema.FieldProviderDocumentType:   models.NormalizeDocumentType(provider.DocumentType),
		schema.FieldProviderDocumentNumber: provider.DocumentNumber,
	}
}
