package billingsource

import (
	"fmt"
	"rips-service/internal/app/models"
	"rips-service/internal/pkg/dto/requests"
	"rips-service/internal/pkg/exceptions"
	"rips-service/internal/pkg/utils"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// batchFromExport converts a JSON export into domain entities. An invalid id
// or an unparseable non-empty date rejects the whole export.
func batchFromExport(export *requests.BillingExport) (*models.BillingBatch, error) {
	batch := &models.BillingBatch{
		Invoices: make([]models.Invoice, 0, len(export.Invoices)),
		Patients: make([]models.Patient, 0, len(export.Patients)),
		Services: make([]models.Service, 0, len(export.Services)),
		Entities: make([]models.Entity, 0, len(export.Entities)),
	}

	for _, entity := range export.Entities {
		id, err := objectID(entity.ID)
		if err != nil {
			return nil, err
		}
		batch.Entities = append(batch.Entities, models.Entity{ID: id, Code: entity.Code, Name: entity.Name, NIT: entity.NIT})
	}

	for _, patient := range export.Patients {
		converted, err := patientFromExport(patient)
		if err != nil {
			return nil, err
		}
		batch.Patients = append(batch.Patients, converted)
	}

	for _, invoice := range export.Invoices {
		converted, err := invoiceFromExport(invoice)
		if err != nil {
			return nil, err
		}
		batch.Invoices = append(batch.Invoices, converted)
	}

	for _, service := range export.Services {
		converted, err := serviceFromExport(service)
		if err != nil {
			return nil, err
		}
		batch.Services = append(batch.Services, converted)
	}

	return batch, nil
}

func invoiceFromExport(invoice requests.InvoiceExport) (models.Invoice, error) {
	var err error
	converted := models.Invoice{
		Prefix:         invoice.Prefix,
		Number:         invoice.Number,
		ContractNumber: invoice.ContractNumber,
		BenefitPlan:    invoice.BenefitPlan,
		PolicyNumber:   invoice.PolicyNumber,
		Copayment:      invoice.Copayment,
		Commission:     invoice.Commission,
		Discounts:      invoice.Discounts,
		TotalValue:     invoice.TotalValue,
	}
	if converted.ID, err = objectID(invoice.ID); err != nil {
		return converted, err
	}
	if converted.EntityID, err = optionalObjectID(invoice.EntityID); err != nil {
		return converted, err
	}
	if converted.PatientIDs, err = objectIDs(invoice.PatientIDs); err != nil {
		return converted, err
	}
	if converted.ServiceIDs, err = objectIDs(invoice.ServiceIDs); err != nil {
		return converted, err
	}
	if converted.IssueDate, err = requiredDate(invoice.IssueDate); err != nil {
		return converted, err
	}
	if converted.PeriodStart, err = dateOrFallback(invoice.PeriodStart, converted.IssueDate); err != nil {
		return converted, err
	}
	if converted.PeriodEnd, err = dateOrFallback(invoice.PeriodEnd, converted.IssueDate); err != nil {
		return converted, err
	}
	return converted, nil
}

func patientFromExport(patient requests.PatientExport) (models.Patient, error) {
	var err error
	converted := models.Patient{
		DocumentType:     models.NormalizeDocumentType(patient.DocumentType),
		DocumentNumber:   strings.TrimSpace(patient.DocumentNumber),
		FirstName:        patient.FirstName,
		SecondName:       patient.SecondName,
		LastName:         patient.LastName,
		SecondLastName:   patient.SecondLastName,
		Gender:           patient.Gender,
		DepartmentCode:   patient.DepartmentCode,
		MunicipalityCode: patient.MunicipalityCode,
		Zone:             patient.Zone,
		RegimeType:       patient.RegimeType,
		CountryCode:      patient.CountryCode,
		Disability:       patient.Disability,
	}
	if converted.ID, err = objectID(patient.ID); err != nil {
		return converted, err
	}
	if converted.BirthDate, err = optionalDate(patient.BirthDate); err != nil {
		return converted, err
	}
	return converted, nil
}

func serviceFromExport(service requests.ServiceExport) (models.Service, error) {
	var err error
	converted := models.Service{
		Type:                       models.ServiceType(service.Type).Normalize(),
		Code:                       service.Code,
		Name:                       service.Name,
		AuthorizationNumber:        service.AuthorizationNumber,
		DiagnosisCode:              service.DiagnosisCode,
		RelatedDiagnoses:           service.RelatedDiagnoses,
		DiagnosisType:              service.DiagnosisType,
		ExternalCause:              service.ExternalCause,
		Purpose:                    service.Purpose,
		Value:                      service.Value,
		ModeratingFee:              service.ModeratingFee,
		Quantity:                   service.Quantity,
		UnitValue:                  service.UnitValue,
		ServiceModality:            service.ServiceModality,
		ServiceGroup:               service.ServiceGroup,
		ProfessionalDocumentType:   service.ProfessionalDocumentType,
		ProfessionalDocumentNumber: service.ProfessionalDocumentNumber,
		Scope:                      service.Scope,
		AttendingStaff:             service.AttendingStaff,
		Complication:               service.Complication,
		SurgicalAct:                service.SurgicalAct,
		AdmissionRoute:             service.AdmissionRoute,
		AdmissionDiagnosis:         service.AdmissionDiagnosis,
		DischargeDestination:       service.DischargeDestination,
		DischargeStatus:            service.DischargeStatus,
		DeathCause:                 service.DeathCause,
		MedicationType:             service.MedicationType,
		PharmaceuticalForm:         service.PharmaceuticalForm,
		Concentration:              service.Concentration,
		UnitOfMeasure:              service.UnitOfMeasure,
		GestationalAge:             service.GestationalAge,
		PrenatalControl:            service.PrenatalControl,
		NewbornGender:              service.NewbornGender,
		Weight:                     service.Weight,
		OtherServiceType:           service.OtherServiceType,
	}
	if converted.ID, err = objectID(service.ID); err != nil {
		return converted, err
	}
	if converted.InvoiceID, err = optionalObjectID(service.InvoiceID); err != nil {
		return converted, err
	}
	if converted.PatientID, err = optionalObjectID(service.PatientID); err != nil {
		return converted, err
	}
	if converted.Date, err = requiredDate(service.Date); err != nil {
		return converted, err
	}
	if converted.AdmissionDate, err = optionalDate(service.AdmissionDate); err != nil {
		return converted, err
	}
	if converted.DischargeDate, err = optionalDate(service.DischargeDate); err != nil {
		return converted, err
	}
	if converted.BirthDate, err = optionalDate(service.BirthDate); err != nil {
		return converted, err
	}
	if converted.DeathDate, err = optionalDate(service.DeathDate); err != nil {
		return converted, err
	}
	return converted, nil
}

func objectID(value string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(value))
	if err != nil {
		return primitive.NilObjectID, exceptions.ErrInvalidObjectID(err, value)
	}
	return id, nil
}

func optionalObjectID(value string) (primitive.ObjectID, error) {
	if strings.TrimSpace(value) == "" {
		return primitive.NilObjectID, nil
	}
	return objectID(value)
}

func objectIDs(values []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(values))
	for _, value := range values {
		id, err := objectID(value)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func requiredDate(value string) (time.Time, error) {
	parsed, ok := utils.ParseFlexibleDate(value)
	if !ok {
		return time.Time{}, exceptions.ErrCannotParseDate(fmt.Errorf("invalid date %q", value))
	}
	return parsed, nil
}

func dateOrFallback(value string, fallback time.Time) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	return requiredDate(value)
}

func optionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	parsed, err := requiredDate(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
