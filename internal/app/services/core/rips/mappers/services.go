package mappers

import (
	"rips-service/internal/app/models"
	"rips-service/internal/app/services/core/rips/schema"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ServiceMapper maps one billed service into the raw record of its record
// type. patient may be nil when the service could not be linked to one.
type ServiceMapper func(ctx Context, code string, service models.Service, patient *models.Patient) models.Record

type serviceVariant struct {
	kind   schema.RecordKind
	mapper ServiceMapper
}

var serviceVariants = map[models.ServiceType]serviceVariant{
	models.ServiceTypeConsultation:    {kind: schema.KindConsultation, mapper: mapConsultation},
	models.ServiceTypeProcedure:       {kind: schema.KindProcedure, mapper: mapProcedure},
	models.ServiceTypeEmergency:       {kind: schema.KindEmergency, mapper: mapEmergency},
	models.ServiceTypeHospitalization: {kind: schema.KindHospitalization, mapper: mapHospitalization},
	models.ServiceTypeNewborn:         {kind: schema.KindNewborn, mapper: mapNewborn},
	models.ServiceTypeMedication:      {kind: schema.KindMedication, mapper: mapMedication},
	models.ServiceTypeOther:           {kind: schema.KindOtherServices, mapper: mapOtherService},
}

func variantFor(serviceType models.ServiceType) serviceVariant {
	if variant, ok := serviceVariants[serviceType.Normalize()]; ok {
		return variant
	}
	return serviceVariants[models.ServiceTypeOther]
}

// RecordKindFor returns the record kind a service type lands in. Unknown
// service types land in the other services file.
func RecordKindFor(serviceType models.ServiceType) schema.RecordKind {
	return variantFor(serviceType).kind
}

// MapService maps a service with the mapper of its variant and returns the
// record type code it belongs to together with the projected record.
func MapService(ctx Context, service models.Service, patient *models.Patient) (string, models.Record) {
	variant := variantFor(service.Type)
	code := ctx.Registry.Code(variant.kind)
	record := variant.mapper(ctx, code, service, patient)
	return code, Project(record, ctx.Registry.GetFileStructure(code))
}

func serviceHeader(ctx Context, service models.Service, patient *models.Patient) models.Record {
	record := models.Record{
		schema.FieldInvoiceNumber:              ctx.Invoice.FullNumber(),
		schema.FieldProviderCode:               ctx.Provider.Code,
		schema.FieldAuthorizationNumber:        strings.TrimSpace(service.AuthorizationNumber),
		schema.FieldProfessionalDocumentType:   models.NormalizeDocumentType(service.ProfessionalDocumentType),
		schema.FieldProfessionalDocumentNumber: strings.TrimSpace(service.ProfessionalDocumentNumber),
		schema.FieldServiceModality:            orDefault(ctx.Registry, schema.FieldServiceModality, service.ServiceModality),
		schema.FieldServiceGroup:               orDefault(ctx.Registry, schema.FieldServiceGroup, service.ServiceGroup),
		schema.FieldModeratingFee:              service.ModeratingFee,
		schema.FieldCollectionConcept:          collectionConcept(ctx, service),
	}
	if patient != nil {
		record[schema.FieldDocumentType] = models.NormalizeDocumentType(patient.DocumentType)
		record[schema.FieldDocumentNumber] = strings.TrimSpace(patient.DocumentNumber)
	}
	relatedDiagnoses(record, service.RelatedDiagnoses)
	return record
}

func mapConsultation(ctx Context, code string, service models.Service, patient *models.Patient) models.Record {
	record := serviceHeader(ctx, service, patient)
	record[schema.FieldConsultationDate] = service.Date
	record[schema.FieldConsultationCode] = strings.TrimSpace(service.Code)
	record[schema.FieldConsultationPurpose] = orDefault(ctx.Registry, schema.FieldConsultationPurpose, service.Purpose)
	record[schema.FieldExternalCause] = orDefault(ctx.Registry, schema.FieldExternalCause, service.ExternalCause)
	record[schema.FieldMainDiagnosis] = strings.TrimSpace(service.DiagnosisCode)
	record[schema.FieldMainDiagnosisType] = orDefault(ctx.Registry, schema.FieldMainDiagnosisType, service.DiagnosisType)
	record[schema.FieldConsultationValue] = service.Value
	record[schema.FieldNetValue] = service.NetValue()
	return record
}

func mapProcedure(ctx Context, code string, service models.Service, patient *models.Patient) models.Record {
	record := serviceHeader(ctx, service, patient)
	record[schema.FieldProcedureDate] = service.Date
	record[schema.FieldProcedureCode] = strings.TrimSpace(service.Code)
	record[schema.FieldProcedureScope] = orDefault(ctx.Registry, schema.FieldProcedureScope, service.Scope)
	record[schema.FieldProcedurePurpose] = orDefault(ctx.Registry, schema.FieldProcedurePurpose, service.Purpose)
	record[schema.FieldAttendingStaff] = strings.TrimSpace(service.AttendingStaff)
	record[schema.FieldMainDiagnosis] = strings.TrimSpace(service.DiagnosisCode)
	record[schema.FieldComplication] = strings.TrimSpace(service.Complication)
	record[schema.FieldSurgicalAct] = strings.TrimSpace(service.SurgicalAct)
	record[schema.FieldProcedureValue] = service.Value
	record[schema.FieldNetValue] = service.NetValue()
	return record
}

func mapEmergency(ctx Context, code string, service models.Service, patient *models.Patient) models.Record {
	record := serviceHeader(ctx, service, patient)
	admission := admissionDate(service)
	record[schema.FieldAdmissionDate] = optionalDate(admission)
	record[schema.FieldAdmissionTime] = optionalClock(admission)
	record[schema.FieldExternalCause] = orDefault(ctx.Registry, schema.FieldExternalCause, service.ExternalCause)
	record[schema.FieldDischargeDiagnosis] = strings.TrimSpace(service.DiagnosisCode)
	record[schema.FieldDischargeDestination] = orDefault(ctx.Registry, schema.FieldDischargeDestination, service.DischargeDestination)
	record[schema.FieldDischargeStatus] = orDefault(ctx.Registry, schema.FieldDischargeStatus, service.DischargeStatus)
	record[schema.FieldDeathCause] = strings.TrimSpace(service.DeathCause)
	record[schema.FieldDischargeDate] = optionalDate(service.DischargeDate)
	record[schema.FieldDischargeTime] = optionalClock(service.DischargeDate)
	return record
}

func mapHospitalization(ctx Context, code string, service models.Service, patient *models.Patient) models.Record {
	record := mapEmergency(ctx, code, service, patient)
	record[schema.FieldAdmissionRoute] = orDefault(ctx.Registry, schema.FieldAdmissionRoute, service.AdmissionRoute)
	admissionDiagnosis := strings.TrimSpace(service.AdmissionDiagnosis)
	if admissionDiagnosis == "" {
		admissionDiagnosis = strings.TrimSpace(service.DiagnosisCode)
	}
	record[schema.FieldAdmissionDiagnosis] = admissionDiagnosis
	record[schema.FieldComplication] = strings.TrimSpace(service.Complication)
	return record
}

func mapNewborn(ctx Context, code string, service models.Service, patient *models.Patient) models.Record {
	record := serviceHeader(ctx, service, patient)
	birth := service.BirthDate
	if birth == nil || birth.IsZero() {
		birth = &service.Date
	}
	record[schema.FieldBirthDate] = optionalDate(birth)
	record[schema.FieldNewbornBirthTime] = optionalClock(birth)
	record[schema.FieldGestationalAge] = optionalInt(service.GestationalAge)
	record[schema.FieldPrenatalControl] = orDefault(ctx.Registry, schema.FieldPrenatalControl, service.PrenatalControl)
	record[schema.FieldGender] = firstChar(service.NewbornGender)
	record[schema.FieldWeight] = optionalInt(service.Weight)
	record[schema.FieldNewbornDiagnosis] = strings.TrimSpace(service.DiagnosisCode)
	record[schema.FieldDeathCause] = strings.TrimSpace(service.DeathCause)
	record[schema.FieldDeathDate] = optionalDate(service.DeathDate)
	record[schema.FieldDeathTime] = optionalClock(service.DeathDate)
	return record
}

func mapMedication(ctx Context, code string, service models.Service, patient *models.Patient) models.Record {
	record := serviceHeader(ctx, service, patient)
	quantity, unitValue, totalValue := lineAmounts(service)
	record[schema.FieldMedicationCode] = strings.TrimSpace(service.Code)
	record[schema.FieldMedicationType] = orDefault(ctx.Registry, schema.FieldMedicationType, service.MedicationType)
	record[schema.FieldGenericName] = FitToField(ctx.Registry, code, schema.FieldGenericName, service.Name)
	record[schema.FieldPharmaceuticalForm] = FitToField(ctx.Registry, code, schema.FieldPharmaceuticalForm, service.PharmaceuticalForm)
	record[schema.FieldConcentration] = FitToField(ctx.Registry, code, schema.FieldConcentration, service.Concentration)
	record[schema.FieldUnitOfMeasure] = FitToField(ctx.Registry, code, schema.FieldUnitOfMeasure, service.UnitOfMeasure)
	record[schema.FieldUnits] = quantity
	record[schema.FieldUnitValue] = unitValue
	record[schema.FieldTotalValue] = totalValue
	return record
}

func mapOtherService(ctx Context, code string, service models.Service, patient *models.Patient) models.Record {
	record := serviceHeader(ctx, service, patient)
	quantity, unitValue, totalValue := lineAmounts(service)
	record[schema.FieldServiceType] = orDefault(ctx.Registry, schema.FieldServiceType, service.OtherServiceType)
	record[schema.FieldServiceCode] = strings.TrimSpace(service.Code)
	record[schema.FieldServiceName] = FitToField(ctx.Registry, code, schema.FieldServiceName, service.Name)
	record[schema.FieldQuantity] = quantity
	record[schema.FieldUnitValue] = unitValue
	record[schema.FieldTotalValue] = totalValue
	return record
}

func admissionDate(service models.Service) *time.Time {
	if service.AdmissionDate != nil && !service.AdmissionDate.IsZero() {
		return service.AdmissionDate
	}
	if service.Date.IsZero() {
		return nil
	}
	return &service.Date
}

// lineAmounts completes quantity, unit value and total of a line. A missing
// quantity counts as one unit, a missing total is unit value times quantity
// and a missing unit value is total divided by quantity.
func lineAmounts(service models.Service) (int, decimal.Decimal, decimal.Decimal) {
	quantity := service.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	units := decimal.NewFromInt(int64(quantity))

	unitValue := service.UnitValue
	totalValue := service.Value
	switch {
	case totalValue.IsZero() && !unitValue.IsZero():
		totalValue = unitValue.Mul(units)
	case unitValue.IsZero() && !totalValue.IsZero():
		unitValue = totalValue.Div(units).Round(2)
	}
	return quantity, unitValue, totalValue
}

func collectionConcept(ctx Context, service models.Service) string {
	if service.ModeratingFee.IsPositive() && ctx.Registry.Defaults.FeeCollectionConcept != "" {
		return ctx.Registry.Defaults.FeeCollectionConcept
	}
	return orDefault(ctx.Registry, schema.FieldCollectionConcept, "")
}

func relatedDiagnoses(record models.Record, diagnoses []string) {
	fields := []string{schema.FieldRelatedDiagnosis1, schema.FieldRelatedDiagnosis2, schema.FieldRelatedDiagnosis3}
	for i, field := range fields {
		if i < len(diagnoses) {
			record[field] = strings.TrimSpace(diagnoses[i])
		}
	}
}
