package requests

import "github.com/shopspring/decimal"

// BillingExport is the JSON document read by the file billing source. Ids
// are hex object ids and dates accept YYYY-MM-DD or RFC 3339 timestamps.
type BillingExport struct {
	Invoices []InvoiceExport `json:"invoices"`
	Patients []PatientExport `json:"patients"`
	Services []ServiceExport `json:"services"`
	Entities []EntityExport  `json:"entities"`
}

type InvoiceExport struct {
	ID             string          `json:"id"`
	Prefix         string          `json:"prefix"`
	Number         string          `json:"number"`
	IssueDate      string          `json:"issueDate"`
	PeriodStart    string          `json:"periodStart"`
	PeriodEnd      string          `json:"periodEnd"`
	EntityID       string          `json:"entityId"`
	ContractNumber string          `json:"contractNumber"`
	BenefitPlan    string          `json:"benefitPlan"`
	PolicyNumber   string          `json:"policyNumber"`
	Copayment      decimal.Decimal `json:"copayment"`
	Commission     decimal.Decimal `json:"commission"`
	Discounts      decimal.Decimal `json:"discounts"`
	TotalValue     decimal.Decimal `json:"totalValue"`
	PatientIDs     []string        `json:"patients"`
	ServiceIDs     []string        `json:"services"`
}

type PatientExport struct {
	ID               string `json:"id"`
	DocumentType     string `json:"documentType"`
	DocumentNumber   string `json:"documentNumber"`
	FirstName        string `json:"firstName"`
	SecondName       string `json:"secondName"`
	LastName         string `json:"lastName"`
	SecondLastName   string `json:"secondLastName"`
	BirthDate        string `json:"birthDate"`
	Gender           string `json:"gender"`
	DepartmentCode   string `json:"departmentCode"`
	MunicipalityCode string `json:"municipalityCode"`
	Zone             string `json:"zone"`
	RegimeType       string `json:"regimeType"`
	CountryCode      string `json:"countryCode"`
	Disability       string `json:"disability"`
}

type ServiceExport struct {
	ID                         string          `json:"id"`
	InvoiceID                  string          `json:"invoiceId"`
	PatientID                  string          `json:"patientId"`
	Type                       string          `json:"type"`
	Code                       string          `json:"code"`
	Name                       string          `json:"name"`
	Date                       string          `json:"date"`
	AuthorizationNumber        string          `json:"authorizationNumber"`
	DiagnosisCode              string          `json:"diagnosisCode"`
	RelatedDiagnoses           []string        `json:"relatedDiagnoses"`
	DiagnosisType              string          `json:"diagnosisType"`
	ExternalCause              string          `json:"externalCause"`
	Purpose                    string          `json:"purpose"`
	Value                      decimal.Decimal `json:"value"`
	ModeratingFee              decimal.Decimal `json:"moderatingFee"`
	Quantity                   int             `json:"quantity"`
	UnitValue                  decimal.Decimal `json:"unitValue"`
	ServiceModality            string          `json:"serviceModality"`
	ServiceGroup               string          `json:"serviceGroup"`
	ProfessionalDocumentType   string          `json:"professionalDocumentType"`
	ProfessionalDocumentNumber string          `json:"professionalDocumentNumber"`
	Scope                      string          `json:"scope"`
	AttendingStaff             string          `json:"attendingStaff"`
	Complication               string          `json:"complication"`
	SurgicalAct                string          `json:"surgicalAct"`
	AdmissionDate              string          `json:"admissionDate"`
	DischargeDate              string          `json:"dischargeDate"`
	AdmissionRoute             string          `json:"admissionRoute"`
	AdmissionDiagnosis         string          `json:"admissionDiagnosis"`
	DischargeDestination       string          `json:"dischargeDestination"`
	DischargeStatus            string          `json:"dischargeStatus"`
	DeathCause                 string          `json:"deathCause"`
	MedicationType             string          `json:"medicationType"`
	PharmaceuticalForm         string          `json:"pharmaceuticalForm"`
	Concentration              string          `json:"concentration"`
	UnitOfMeasure              string          `json:"unitOfMeasure"`
	BirthDate                  string          `json:"birthDate"`
	GestationalAge             int             `json:"gestationalAge"`
	PrenatalControl            string          `json:"prenatalControl"`
	NewbornGender              string          `json:"newbornGender"`
	Weight                     int             `json:"weight"`
	DeathDate                  string          `json:"deathDate"`
	OtherServiceType           string          `json:"otherServiceType"`
}

type EntityExport struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
	NIT  string `json:"nit"`
}
