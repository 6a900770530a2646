package schema

import (
	"strings"

	"rips-service/internal/app/models"
	"rips-service/internal/pkg/exceptions"
)

// RecordKind identifies a record type independently of the code a format
// version gives it ("AC" in 3374, "ACCT" in 2275).
type RecordKind int

const (
	KindUnknown RecordKind = iota
	KindControl
	KindUsers
	KindConsultation
	KindProcedure
	KindEmergency
	KindHospitalization
	KindNewborn
	KindMedication
	KindOtherServices
)

func (k RecordKind) String() string {
	switch k {
	case KindControl:
		return "control"
	case KindUsers:
		return "users"
	case KindConsultation:
		return "consultation"
	case KindProcedure:
		return "procedure"
	case KindEmergency:
		return "emergency"
	case KindHospitalization:
		return "hospitalization"
	case KindNewborn:
		return "newborn"
	case KindMedication:
		return "medication"
	case KindOtherServices:
		return "other_services"
	default:
		return "unknown"
	}
}

// Defaults holds the domain codes a mapper falls back to when the source
// entity does not carry one. An empty value means the version has no default.
type Defaults struct {
	ExternalCause        string
	ConsultationPurpose  string
	ProcedurePurpose     string
	ProcedureScope       string
	DiagnosisType        string
	CollectionConcept    string
	FeeCollectionConcept string
	ServiceModality      string
	ServiceGroup         string
	AdmissionRoute       string
	DischargeDestination string
	DischargeStatus      string
	MedicationType       string
	OtherServiceType     string
	PrenatalControl      string
	CountryCode          string
	Disability           string
}

type recordType struct {
	code       string
	kind       RecordKind
	fields     []models.FieldSpec
	valueField string
}

// Registry is the versioned, read-only table of record types and their
// ordered field specs.
type Registry struct {
	Version       models.FormatVersion
	Defaults      Defaults
	DocumentTypes []string
	// ZoneCodes maps the canonical patient zone ("U", "R") to this version's code.
	ZoneCodes map[string]string
	// CombinedMunicipalityCode is set when the municipality field carries the
	// department code as its prefix instead of a separate department field.
	CombinedMunicipalityCode bool
	// SummaryCarriesValue is set when per-type control records also carry the
	// total monetary value of the summarized record type.
	SummaryCarriesValue bool
	EmitsXML            bool

	types  []recordType
	byCode map[string]int
	byKind map[RecordKind]int
}

func newRegistry(registry Registry, types ...recordType) *Registry {
	registry.types = types
	registry.byCode = make(map[string]int, len(types))
	registry.byKind = make(map[RecordKind]int, len(types))
	for i, recordType := range types {
		registry.byCode[recordType.code] = i
		registry.byKind[recordType.kind] = i
	}
	return &registry
}

func str(name string, maxLength int) models.FieldSpec {
	return models.FieldSpec{Name: name, Type: models.FieldTypeString, MaxLength: maxLength}
}

func num(name string, maxLength int) models.FieldSpec {
	return models.FieldSpec{Name: name, Type: models.FieldTypeNumber, MaxLength: maxLength}
}

func date(name string) models.FieldSpec {
	return models.FieldSpec{Name: name, Type: models.FieldTypeDate, MaxLength: 10}
}

var (
	legacyRegistry  = newLegacyRegistry()
	currentRegistry = newCurrentRegistry()
)

func ParseVersion(version string) (models.FormatVersion, error) {
	switch models.FormatVersion(strings.TrimSpace(version)) {
	case models.FormatVersionLegacy:
		return models.FormatVersionLegacy, nil
	case models.FormatVersionCurrent:
		return models.FormatVersionCurrent, nil
	default:
		return "", exceptions.ErrUnknownFormatVersion(nil, version)
	}
}

func For(version models.FormatVersion) (*Registry, error) {
	switch version {
	case models.FormatVersionLegacy:
		return legacyRegistry, nil
	case models.FormatVersionCurrent:
		return currentRegistry, nil
	default:
		return nil, exceptions.ErrUnknownFormatVersion(nil, string(version))
	}
}

// GetFileStructure returns the ordered field specs of a record type. Unknown
// codes yield an empty slice, which callers treat as nothing to emit.
func (r *Registry) GetFileStructure(code string) []models.FieldSpec {
	i, ok := r.byCode[code]
	if !ok {
		return []models.FieldSpec{}
	}
	fields := make([]models.FieldSpec, len(r.types[i].fields))
	copy(fields, r.types[i].fields)
	return fields
}

func (r *Registry) Codes() []string {
	codes := make([]string, len(r.types))
	for i, recordType := range r.types {
		codes[i] = recordType.code
	}
	return codes
}

func (r *Registry) Code(kind RecordKind) string {
	i, ok := r.byKind[kind]
	if !ok {
		return ""
	}
	return r.types[i].code
}

func (r *Registry) Kind(code string) RecordKind {
	i, ok := r.byCode[code]
	if !ok {
		return KindUnknown
	}
	return r.types[i].kind
}

func (r *Registry) ControlCode() string {
	return r.Code(KindControl)
}

func (r *Registry) UsersCode() string {
	return r.Code(KindUsers)
}

// MandatoryCodes lists the record types that must hold at least one record.
func (r *Registry) MandatoryCodes() []string {
	return []string{r.ControlCode(), r.UsersCode()}
}

// ValueField names the monetary field summed into control summaries.
// Record types without money return an empty string.
func (r *Registry) ValueField(code string) string {
	i, ok := r.byCode[code]
	if !ok {
		return ""
	}
	return r.types[i].valueField
}

func (r *Registry) Field(code, name string) (models.FieldSpec, bool) {
	i, ok := r.byCode[code]
	if !ok {
		return models.FieldSpec{}, false
	}
	for _, field := range r.types[i].fields {
		if field.Name == name {
			return field, true
		}
	}
	return models.FieldSpec{}, false
}

func (r *Registry) HasField(code, name string) bool {
	_, ok := r.Field(code, name)
	return ok
}

// FieldDefault returns the version default for a field, if there is one.
func (r *Registry) FieldDefault(name string) (string, bool) {
	var value string
	switch name {
	case FieldExternalCause:
		value = r.Defaults.ExternalCause
	case FieldConsultationPurpose:
		value = r.Defaults.ConsultationPurpose
	case FieldProcedurePurpose:
		value = r.Defaults.ProcedurePurpose
	case FieldProcedureScope:
		value = r.Defaults.ProcedureScope
	case FieldMainDiagnosisType:
		value = r.Defaults.DiagnosisType
	case FieldCollectionConcept:
		value = r.Defaults.CollectionConcept
	case FieldServiceModality:
		value = r.Defaults.ServiceModality
	case FieldServiceGroup:
		value = r.Defaults.ServiceGroup
	case FieldAdmissionRoute:
		value = r.Defaults.AdmissionRoute
	case FieldDischargeDestination:
		value = r.Defaults.DischargeDestination
	case FieldDischargeStatus:
		value = r.Defaults.DischargeStatus
	case FieldMedicationType:
		value = r.Defaults.MedicationType
	case FieldServiceType:
		value = r.Defaults.OtherServiceType
	case FieldPrenatalControl:
		value = r.Defaults.PrenatalControl
	case FieldCountryCode:
		value = r.Defaults.CountryCode
	case FieldDisability:
		value = r.Defaults.Disability
	}
	return value, value != ""
}

func (r *Registry) IsDocumentType(documentType string) bool {
	for _, known := range r.DocumentTypes {
		if known == documentType {
			return true
		}
	}
	return false
}

// ZoneCode translates a canonical zone ("U", "R") into this version's code.
// Values that are already codes of this version are returned unchanged.
func (r *Registry) ZoneCode(zone string) string {
	zone = strings.ToUpper(strings.TrimSpace(zone))
	if code, ok := r.ZoneCodes[zone]; ok {
		return code
	}
	return zone
}

// CanonicalZone is the inverse of ZoneCode.
func (r *Registry) CanonicalZone(code string) string {
	for canonical, versionCode := range r.ZoneCodes {
		if versionCode == code {
			return canonical
		}
	}
	return code
}
