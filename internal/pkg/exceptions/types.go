package exceptions

import (
	"fmt"
	"rips-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseDate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseDate)
	}
	ErrInvalidPeriod = func(from, to string) *CustomError {
		return BuildNewCustomError(nil, constvars.ErrClientInvalidPeriod, fmt.Sprintf(constvars.ErrDevInvalidPeriod, to, from))
	}
	ErrInvalidObjectID = func(err error, value string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidObjectID, value))
	}

	// Config
	ErrUnknownConfigValue = func(setting, value string) *CustomError {
		return BuildNewCustomError(nil, constvars.ErrClientInvalidConfiguration, fmt.Sprintf(constvars.ErrDevUnknownConfigValue, setting, value))
	}

	// Parse
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// RIPS
	ErrUnknownFormatVersion = func(err error, version string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientUnknownFormatVersion, fmt.Sprintf(constvars.ErrDevUnknownFormatVersion, version))
	}
	ErrConversionSameVersion = func(err error, version string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevConversionSameVersion, version))
	}
	ErrSerializeXML = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSerializeXML)
	}
	ErrGenerationNotInitialized = func(collaborator string) *CustomError {
		return BuildNewCustomError(nil, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevGenerationNotInitialized, collaborator))
	}

	// Billing source
	ErrLoadBillingData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientBillingDataUnavailable, constvars.ErrDevBillingSourceLoad)
	}
	ErrOpenBillingSource = func(err error, source string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientBillingDataUnavailable, fmt.Sprintf(constvars.ErrDevBillingSourceOpen, source))
	}

	ErrMongoDBFindDocuments = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientBillingDataUnavailable, fmt.Sprintf(constvars.ErrDevMongoDBFindDocuments, collection))
	}
	ErrMongoDBIterateDocuments = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientBillingDataUnavailable, fmt.Sprintf(constvars.ErrDevMongoDBIterateDocuments, collection))
	}

	// File sink
	ErrWriteRipsFile = func(err error, fileName string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientCannotWriteRipsFiles, fmt.Sprintf(constvars.ErrDevFileSinkWrite, fileName))
	}
	ErrPrepareOutput = func(err error, location string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientCannotWriteRipsFiles, fmt.Sprintf(constvars.ErrDevFileSinkPrepare, location))
	}

	ErrObjectStoreWrite = func(err error, bucket, objectName string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientCannotWriteRipsFiles, fmt.Sprintf(constvars.ErrDevObjectStoreWrite, objectName, bucket))
	}
	ErrObjectStoreBucket = func(err error, bucket string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientCannotWriteRipsFiles, fmt.Sprintf(constvars.ErrDevObjectStoreBucket, bucket))
	}

	// Notifier
	ErrPublishGeneration = func(err error, queue string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevPublishGeneration, queue))
	}

	// Report
	ErrBuildReport = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevBuildReport)
	}
)
