package constvars

const (
	LoggingGenerationIDKey = "generation_id"
	LoggingVersionKey      = "format_version"
	LoggingTargetKey       = "target_version"
	LoggingDataKey         = "data"
	LoggingRequestKey      = "request"
	LoggingFileNameKey     = "file_name"
	LoggingRecordCountKey  = "record_count"
	LoggingInvoiceCountKey = "invoice_count"
	LoggingErrorCountKey   = "error_count"
	LoggingWarningCountKey = "warning_count"
	LoggingLocationKey     = "location"
	LoggingStepKey         = "step"
	LoggingDurationKey     = "duration"
	LoggingQueueKey        = "queue"
)
