package constvars

const (
	RipsVersionLegacy  = "3374"
	RipsVersionCurrent = "2275"
)

const (
	RipsDateLayout      = "2006-01-02"
	RipsClockLayout     = "15:04"
	RipsTimestampLayout = "2006-01-02T15:04:05"
	RipsCompactLayout   = "20060102"
)

// Layouts accepted when a date value arrives as free text.
var RipsParseableDateLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"02/01/2006",
	"2006/01/02",
}

const (
	RipsFieldDelimiter = ","
	RipsLineTerminator = "\n"
)

const (
	RipsTextExtension   = ".txt"
	RipsXMLExtension    = ".xml"
	RipsReportExtension = ".xlsx"

	RipsTextContentType   = "text/plain; charset=utf-8"
	RipsXMLContentType    = "application/xml"
	RipsReportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	RipsJSONContentType   = "application/json"
)

const (
	RipsXMLRootElement       = "RIPS"
	RipsXMLRecordElement     = "registro"
	RipsXMLVersionAttr       = "version"
	RipsXMLGeneratedAtAttr   = "fechaGeneracion"
	RipsXMLFileNameFormat    = "RIPS_%s_%s" + RipsXMLExtension
	RipsTextFileNameFormat   = "%s%06d" + RipsTextExtension
	RipsReportFileNameFormat = "RIPS_%s_%s_inspeccion" + RipsReportExtension
	RipsValidationFileName   = "RIPS_%s_%s_validacion.json"
	RipsValidationFileCode   = "VALIDACION"
)

// Age units of the legacy users file.
const (
	RipsAgeUnitYears  = "1"
	RipsAgeUnitMonths = "2"
	RipsAgeUnitDays   = "3"
)

// Validation and warning messages. Every message embeds the record type and,
// where applicable, the zero-based record index and field name.
const (
	RipsMsgMissingMandatoryFile  = "record type %s is mandatory but has no records"
	RipsMsgUnknownUserReference  = "%s[%d]: user %s-%s is not present in %s"
	RipsMsgFieldRequired         = "%s[%d]: field %s is required"
	RipsMsgFieldInvalidDate      = "%s[%d]: field %s must be a date formatted as YYYY-MM-DD, got %q"
	RipsMsgFieldInvalidDocType   = "%s[%d]: field %s has unknown document type %q"
	RipsMsgFieldInvalid          = "%s[%d]: field %s is invalid"
	RipsMsgNegativeNetValue      = "%s[%d]: field %s is negative (%s)"
	RipsMsgSummaryCountMismatch  = "%s[%d]: summary for %s declares %s records but %d were generated"
	RipsMsgMissingSummary        = "%s: no summary record for %s"
	RipsMsgDuplicateUserConflict = "%s: user %s appears with different data, keeping the first occurrence"
	RipsMsgUnresolvedPatient     = "%s: service %s of invoice %s has no resolvable patient"
	RipsMsgUnresolvedEntity      = "%s: invoice %s references an unknown entity"
)

const (
	RipsBillingSourceJSON  = "json"
	RipsBillingSourceMongo = "mongo"
	RipsFileSinkLocal      = "local"
	RipsFileSinkMinio      = "minio"
)

const (
	MongoCollectionInvoices = "invoices"
	MongoCollectionPatients = "patients"
	MongoCollectionServices = "services"
	MongoCollectionEntities = "entities"
)

const RipsGenerationEventType = "rips.generation.finished"
