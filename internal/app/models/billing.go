package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ServiceType string

const (
	ServiceTypeConsultation    ServiceType = "CONSULTATION"
	ServiceTypeProcedure       ServiceType = "PROCEDURE"
	ServiceTypeMedication      ServiceType = "MEDICATION"
	ServiceTypeEmergency       ServiceType = "EMERGENCY"
	ServiceTypeHospitalization ServiceType = "HOSPITALIZATION"
	ServiceTypeNewborn         ServiceType = "NEWBORN"
	ServiceTypeOther           ServiceType = "OTHER"
)

// Normalize folds unknown or differently cased service types into the known set.
// Anything unrecognized ends up as ServiceTypeOther.
func (t ServiceType) Normalize() ServiceType {
	switch normalized := ServiceType(strings.ToUpper(strings.TrimSpace(string(t)))); normalized {
	case ServiceTypeConsultation, ServiceTypeProcedure, ServiceTypeMedication,
		ServiceTypeEmergency, ServiceTypeHospitalization, ServiceTypeNewborn:
		return normalized
	default:
		return ServiceTypeOther
	}
}

type Invoice struct {
	ID             primitive.ObjectID   `json:"_id" bson:"_id"`
	Prefix         string               `json:"prefix" bson:"prefix"`
	Number         string               `json:"number" bson:"number"`
	IssueDate      time.Time            `json:"issueDate" bson:"issueDate"`
	PeriodStart    time.Time            `json:"periodStart" bson:"periodStart"`
	PeriodEnd      time.Time            `json:"periodEnd" bson:"periodEnd"`
	EntityID       primitive.ObjectID   `json:"entityId" bson:"entityId"`
	ContractNumber string               `json:"contractNumber" bson:"contractNumber"`
	BenefitPlan    string               `json:"benefitPlan" bson:"benefitPlan"`
	PolicyNumber   string               `json:"policyNumber" bson:"policyNumber"`
	Copayment      decimal.Decimal      `json:"copayment" bson:"copayment"`
	Commission     decimal.Decimal      `json:"commission" bson:"commission"`
	Discounts      decimal.Decimal      `json:"discounts" bson:"discounts"`
	TotalValue     decimal.Decimal      `json:"totalValue" bson:"totalValue"`
	PatientIDs     []primitive.ObjectID `json:"patients" bson:"patients"`
	ServiceIDs     []primitive.ObjectID `json:"services" bson:"services"`
}

func (i Invoice) FullNumber() string {
	return i.Prefix + i.Number
}

type PatientKey struct {
	DocumentType   string
	DocumentNumber string
}

func (k PatientKey) String() string {
	return k.DocumentType + "-" + k.DocumentNumber
}

type Patient struct {
	ID               primitive.ObjectID `json:"_id" bson:"_id"`
	DocumentType     string             `json:"documentType" bson:"documentType"`
	DocumentNumber   string             `json:"documentNumber" bson:"documentNumber"`
	FirstName        string             `json:"firstName" bson:"firstName"`
	SecondName       string             `json:"secondName" bson:"secondName"`
	LastName         string             `json:"lastName" bson:"lastName"`
	SecondLastName   string             `json:"secondLastName" bson:"secondLastName"`
	BirthDate        *time.Time         `json:"birthDate,omitempty" bson:"birthDate,omitempty"`
	Gender           string             `json:"gender" bson:"gender"`
	DepartmentCode   string             `json:"departmentCode" bson:"departmentCode"`
	MunicipalityCode string             `json:"municipalityCode" bson:"municipalityCode"`
	Zone             string             `json:"zone" bson:"zone"`
	RegimeType       string             `json:"regimeType" bson:"regimeType"`
	CountryCode      string             `json:"countryCode" bson:"countryCode"`
	Disability       string             `json:"disability" bson:"disability"`
}

// Key identifies a patient by normalized document type and number, so "cc"
// and "CC" name the same person.
func (p Patient) Key() PatientKey {
	return PatientKey{DocumentType: NormalizeDocumentType(p.DocumentType), DocumentNumber: strings.TrimSpace(p.DocumentNumber)}
}

// NormalizeDocumentType trims and upper-cases an identification document
// type. Every source and record mapper goes through it.
func NormalizeDocumentType(documentType string) string {
	return strings.ToUpper(strings.TrimSpace(documentType))
}

// Service is a billed line item. Only the fields relevant to its Type are
// expected to be populated.
type Service struct {
	ID                  primitive.ObjectID `json:"_id" bson:"_id"`
	InvoiceID           primitive.ObjectID `json:"invoiceId" bson:"invoiceId"`
	PatientID           primitive.ObjectID `json:"patientId" bson:"patientId"`
	Type                ServiceType        `json:"type" bson:"type"`
	Code                string             `json:"code" bson:"code"`
	Name                string             `json:"name" bson:"name"`
	Date                time.Time          `json:"date" bson:"date"`
	AuthorizationNumber string             `json:"authorizationNumber" bson:"authorizationNumber"`
	DiagnosisCode       string             `json:"diagnosisCode" bson:"diagnosisCode"`
	RelatedDiagnoses    []string           `json:"relatedDiagnoses" bson:"relatedDiagnoses"`
	DiagnosisType       string             `json:"diagnosisType" bson:"diagnosisType"`
	ExternalCause       string             `json:"externalCause" bson:"externalCause"`
	Purpose             string             `json:"purpose" bson:"purpose"`
	Value               decimal.Decimal    `json:"value" bson:"value"`
	ModeratingFee       decimal.Decimal    `json:"moderatingFee" bson:"moderatingFee"`
	Quantity            int                `json:"quantity" bson:"quantity"`
	UnitValue           decimal.Decimal    `json:"unitValue" bson:"unitValue"`

	ServiceModality            string `json:"serviceModality" bson:"serviceModality"`
	ServiceGroup               string `json:"serviceGroup" bson:"serviceGroup"`
	ProfessionalDocumentType   string `json:"professionalDocumentType" bson:"professionalDocumentType"`
	ProfessionalDocumentNumber string `json:"professionalDocumentNumber" bson:"professionalDocumentNumber"`

	// Procedure
	Scope          string `json:"scope" bson:"scope"`
	AttendingStaff string `json:"attendingStaff" bson:"attendingStaff"`
	Complication   string `json:"complication" bson:"complication"`
	SurgicalAct    string `json:"surgicalAct" bson:"surgicalAct"`

	// Emergency and hospitalization
	AdmissionDate        *time.Time `json:"admissionDate,omitempty" bson:"admissionDate,omitempty"`
	DischargeDate        *time.Time `json:"dischargeDate,omitempty" bson:"dischargeDate,omitempty"`
	AdmissionRoute       string     `json:"admissionRoute" bson:"admissionRoute"`
	AdmissionDiagnosis   string     `json:"admissionDiagnosis" bson:"admissionDiagnosis"`
	DischargeDestination string     `json:"dischargeDestination" bson:"dischargeDestination"`
	DischargeStatus      string     `json:"dischargeStatus" bson:"dischargeStatus"`
	DeathCause           string     `json:"deathCause" bson:"deathCause"`

	// Medication
	MedicationType     string `json:"medicationType" bson:"medicationType"`
	PharmaceuticalForm string `json:"pharmaceuticalForm" bson:"pharmaceuticalForm"`
	Concentration      string `json:"concentration" bson:"concentration"`
	UnitOfMeasure      string `json:"unitOfMeasure" bson:"unitOfMeasure"`

	// Newborn
	BirthDate       *time.Time `json:"birthDate,omitempty" bson:"birthDate,omitempty"`
	GestationalAge  int        `json:"gestationalAge" bson:"gestationalAge"`
	PrenatalControl string     `json:"prenatalControl" bson:"prenatalControl"`
	NewbornGender   string     `json:"newbornGender" bson:"newbornGender"`
	Weight          int        `json:"weight" bson:"weight"`
	DeathDate       *time.Time `json:"deathDate,omitempty" bson:"deathDate,omitempty"`

	// Other services
	OtherServiceType string `json:"otherServiceType" bson:"otherServiceType"`
}

// NetValue is the gross value minus the moderating fee. It is not clamped,
// a fee larger than the value yields a negative net value.
func (s Service) NetValue() decimal.Decimal {
	return s.Value.Sub(s.ModeratingFee)
}

type Entity struct {
	ID   primitive.ObjectID `json:"_id" bson:"_id"`
	Code string             `json:"code" bson:"code"`
	Name string             `json:"name" bson:"name"`
	NIT  string             `json:"nit" bson:"nit"`
}

// Provider identifies the health service provider issuing the RIPS files.
type Provider struct {
	Code             string
	HabilitationCode string
	Name             string
	DocumentType     string
	DocumentNumber   string
}

// ServiceLine pairs a billed service with the patient it was rendered to.
// Patient is nil when the reference could not be resolved.
type ServiceLine struct {
	Service Service
	Patient *Patient
}

// BillingBatch is the read-only input of one generation run.
type BillingBatch struct {
	Invoices []Invoice
	Patients []Patient
	Services []Service
	Entities []Entity
}

func (b *BillingBatch) patientIndex() map[primitive.ObjectID]*Patient {
	index := make(map[primitive.ObjectID]*Patient, len(b.Patients))
	for i := range b.Patients {
		index[b.Patients[i].ID] = &b.Patients[i]
	}
	return index
}

func (b *BillingBatch) FindEntity(entityID primitive.ObjectID) *Entity {
	for i := range b.Entities {
		if b.Entities[i].ID == entityID {
			return &b.Entities[i]
		}
	}
	return nil
}

// InvoiceLines resolves the services and patients referenced by an invoice.
// Services follow the invoice's ServiceIDs order when present, otherwise the
// batch order of services pointing back at the invoice. Patients listed on the
// invoice come first, then the patients of each service.
func (b *BillingBatch) InvoiceLines(invoice Invoice) ([]*Patient, []ServiceLine) {
	patientsByID := b.patientIndex()

	var services []Service
	if len(invoice.ServiceIDs) > 0 {
		servicesByID := make(map[primitive.ObjectID]Service, len(b.Services))
		for _, service := range b.Services {
			servicesByID[service.ID] = service
		}
		for _, serviceID := range invoice.ServiceIDs {
			if service, ok := servicesByID[serviceID]; ok {
				services = append(services, service)
			}
		}
	} else {
		for _, service := range b.Services {
			if service.InvoiceID == invoice.ID {
				services = append(services, service)
			}
		}
	}

	var patients []*Patient
	for _, patientID := range invoice.PatientIDs {
		if patient, ok := patientsByID[patientID]; ok {
			patients = append(patients, patient)
		}
	}

	lines := make([]ServiceLine, 0, len(services))
	for _, service := range services {
		patient := patientsByID[service.PatientID]
		if patient != nil {
			patients = append(patients, patient)
		}
		lines = append(lines, ServiceLine{Service: service, Patient: patient})
	}
	return patients, lines
}

// BillingFilter selects the invoices of a remission by issue date. Both
// bounds are inclusive calendar days; a zero bound is open.
type BillingFilter struct {
	From time.Time
	To   time.Time
}

func (f BillingFilter) Includes(invoice Invoice) bool {
	day := time.Date(invoice.IssueDate.Year(), invoice.IssueDate.Month(), invoice.IssueDate.Day(), 0, 0, 0, 0, time.UTC)
	if !f.From.IsZero() && day.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && day.After(f.To) {
		return false
	}
	return true
}

// Filter keeps the invoices matched by the filter together with the
// patients, services and entities they reference.
func (b *BillingBatch) Filter(filter BillingFilter) *BillingBatch {
	filtered := &BillingBatch{}
	patientIDs := make(map[primitive.ObjectID]struct{})
	entityIDs := make(map[primitive.ObjectID]struct{})

	for _, invoice := range b.Invoices {
		if !filter.Includes(invoice) {
			continue
		}
		filtered.Invoices = append(filtered.Invoices, invoice)
		entityIDs[invoice.EntityID] = struct{}{}
		for _, patientID := range invoice.PatientIDs {
			patientIDs[patientID] = struct{}{}
		}
	}

	for _, invoice := range filtered.Invoices {
		_, lines := b.InvoiceLines(invoice)
		for _, line := range lines {
			filtered.Services = append(filtered.Services, line.Service)
			patientIDs[line.Service.PatientID] = struct{}{}
		}
	}

	for _, patient := range b.Patients {
		if _, ok := patientIDs[patient.ID]; ok {
			filtered.Patients = append(filtered.Patients, patient)
		}
	}
	for _, entity := range b.Entities {
		if _, ok := entityIDs[entity.ID]; ok {
			filtered.Entities = append(filtered.Entities, entity)
		}
	}
	return filtered
}
