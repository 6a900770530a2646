package constvars

// Custom error messages for validation tags
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"alphanum":     "must contain only alphanumeric characters",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"numeric":      "must be a number",
	"len":          "must be %s characters long",
	"oneof":        "must be one of [%s]",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"dir":          "must be an existing directory",
	"file":         "must be an existing file",
	"rips_date":    "must be a date formatted as YYYY-MM-DD",
	"rips_version": "must be one of [3374, 2275]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientUnknownFormatVersion          = "the requested RIPS format version is not supported"
	ErrClientBillingDataUnavailable        = "the billing data for the requested period could not be loaded"
	ErrClientCannotWriteRipsFiles          = "the RIPS files could not be written"
	ErrClientInvalidPeriod                 = "the end of the period must be on or after its start"
	ErrClientInvalidConfiguration          = "the service configuration is invalid"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate          = "cannot parse the requested date"
	ErrDevInvalidObjectID          = "cannot parse %q as an object id"
	ErrDevUnknownFormatVersion     = "unknown RIPS format version %q"
	ErrDevBillingSourceLoad        = "failed to load billing data from source"
	ErrDevBillingSourceOpen        = "failed to open billing source %s"
	ErrDevFileSinkWrite            = "failed to write RIPS file %s"
	ErrDevFileSinkPrepare          = "failed to prepare output location %s"
	ErrDevSerializeXML             = "failed to serialize RIPS XML document"
	ErrDevBuildReport              = "failed to build the RIPS inspection workbook"
	ErrDevConversionSameVersion    = "source and target format versions are both %s"
	ErrDevGenerationNotInitialized = "generation usecase is missing a collaborator: %s"
	ErrDevInvalidPeriod            = "period end %s is before period start %s"
	ErrDevMongoDBFindDocuments     = "failed to query mongo collection %s"
	ErrDevMongoDBIterateDocuments  = "failed to iterate mongo collection %s"
	ErrDevObjectStoreWrite         = "failed to store object %s in bucket %s"
	ErrDevObjectStoreBucket        = "bucket %s is not available"
	ErrDevPublishGeneration        = "failed to publish generation event to queue %s"
	ErrDevUnknownConfigValue       = "unknown %s %q"
)
