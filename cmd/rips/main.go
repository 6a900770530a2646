package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"rips-service/internal/app/config"
	"rips-service/internal/app/contracts"
	"rips-service/internal/app/drivers/database"
	"rips-service/internal/app/drivers/logger"
	"rips-service/internal/app/drivers/messaging"
	"rips-service/internal/app/drivers/storage"
	"rips-service/internal/app/models"
	"rips-service/internal/app/services/core/rips"
	"rips-service/internal/app/services/core/rips/assembler"
	"rips-service/internal/app/services/core/rips/formatter"
	"rips-service/internal/app/services/shared/billingsource"
	"rips-service/internal/app/services/shared/notifier"
	"rips-service/internal/app/services/shared/report"
	storageService "rips-service/internal/app/services/shared/storage"
	"rips-service/internal/pkg/constvars"
	"rips-service/internal/pkg/dto/responses"
	"rips-service/internal/pkg/exceptions"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	console := logger.NewLogrusLogger(internalConfig)

	opts, err := parseOptions(args, internalConfig, os.Stderr)
	if err != nil {
		console.Errorf("Invalid arguments: %v", err)
		return constvars.ExitCodeFailure
	}
	if opts.BuildInfo {
		fmt.Fprintf(stdout, "Version: %s\nTag: %s\n", Version, Tag)
		return constvars.ExitCodeOK
	}
	internalConfig.Rips.OutputDir = opts.Output

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		console.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Logger:         logger.NewZapLogger(driverConfig, internalConfig),
		Console:        console,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	defer func() {
		if err := bootstrap.Shutdown(context.Background()); err != nil {
			console.Errorf("Error shutting down drivers: %v", err)
		}
	}()

	usecase, err := bootstrapingTheApp(bootstrap, opts)
	if err != nil {
		console.Errorf("Error bootstrapping the app: %v", err)
		return constvars.ExitCodeFailure
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console.WithFields(logrus.Fields{
		"version": opts.Version,
		"from":    opts.From,
		"to":      opts.To,
	}).Info("Generating RIPS")

	var generation *models.Generation
	switch opts.mode() {
	case modeValidate:
		generation, err = usecase.Validate(ctx, opts.validateRequest())
	case modeConvert:
		generation, err = usecase.Convert(ctx, opts.convertRequest())
	default:
		generation, err = usecase.Generate(ctx, opts.generateRequest())
	}

	if writeErr := writeResponse(stdout, generation, err); writeErr != nil {
		console.Errorf("Error writing response: %v", writeErr)
	}
	if err != nil {
		console.Errorf("RIPS generation failed: %v", err)
	} else {
		for _, file := range generation.Files {
			console.Infof("Wrote %s (%d records) to %s", file.Name, file.Records, file.Location)
		}
	}
	return exitCode(generation, err)
}

// bootstrapingTheApp connects only the drivers the configuration selects and
// wires the usecase on top of them.
func bootstrapingTheApp(bootstrap *config.Bootstrap, opts *options) (contracts.RipsUsecase, error) {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	numericPolicy, ok := formatter.ParseNumericPolicy(internalConfig.Rips.NumericPolicy)
	if !ok {
		return nil, exceptions.ErrUnknownConfigValue("numeric policy", internalConfig.Rips.NumericPolicy)
	}
	deduplicationPolicy, ok := assembler.ParseDeduplicationPolicy(internalConfig.Rips.DeduplicationPolicy)
	if !ok {
		return nil, exceptions.ErrUnknownConfigValue("deduplication policy", internalConfig.Rips.DeduplicationPolicy)
	}

	// Billing source
	var billingSource contracts.BillingSource
	switch sourceName := opts.billingSource(internalConfig); sourceName {
	case constvars.RipsBillingSourceJSON:
		billingSource = billingsource.NewJSONBillingSource(opts.Input, log)
	case constvars.RipsBillingSourceMongo:
		bootstrap.MongoDB = database.NewMongoDB(bootstrap.DriverConfig)
		billingSource = billingsource.NewMongoBillingSource(bootstrap.MongoDB, internalConfig.MongoDB.BillingDBName, log)
	default:
		return nil, exceptions.ErrUnknownConfigValue("billing source", sourceName)
	}

	// File sink
	var fileSink contracts.FileSink
	switch internalConfig.Rips.FileSink {
	case constvars.RipsFileSinkLocal:
		fileSink = storageService.NewLocalStorage(internalConfig.Rips.OutputDir, log)
	case constvars.RipsFileSinkMinio:
		bootstrap.Minio = storage.NewMinio(bootstrap.DriverConfig)
		fileSink = storageService.NewMinioStorage(bootstrap.Minio, internalConfig.Minio.BucketName, internalConfig.Minio.ObjectPrefix, log)
	default:
		return nil, exceptions.ErrUnknownConfigValue("file sink", internalConfig.Rips.FileSink)
	}

	// Notifier
	var generationNotifier contracts.GenerationNotifier
	if internalConfig.Rips.NotifyGenerations {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(bootstrap.DriverConfig)
		rabbitMQNotifier, err := notifier.NewRabbitMQNotifier(bootstrap.RabbitMQ, internalConfig.RabbitMQ.GenerationQueue, log)
		if err != nil {
			return nil, err
		}
		generationNotifier = rabbitMQNotifier
	}

	reportBuilder := report.NewExcelReportBuilder(formatter.New(numericPolicy), log)

	return rips.NewRipsUsecase(
		billingSource,
		fileSink,
		reportBuilder,
		generationNotifier,
		internalConfig.Rips.Provider(),
		rips.Policies{Numeric: numericPolicy, Deduplication: deduplicationPolicy},
		log,
	), nil
}

func writeResponse(w io.Writer, generation *models.Generation, err error) error {
	response := responses.ResponseDTO{
		Success: err == nil,
	}
	if generation != nil {
		response.Data = generation
	}
	if err != nil {
		response.Message = err.Error()
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			response.Message = customErr.ClientMessage
			var validationErrors validator.ValidationErrors
			if errors.As(customErr.Err, &validationErrors) {
				response.Message = exceptions.FormatAllValidationErrors(validationErrors)
			}
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

func exitCode(generation *models.Generation, err error) int {
	if err != nil {
		return constvars.ExitCodeFailure
	}
	if generation != nil && generation.Validation != nil && !generation.Validation.IsValid {
		return constvars.ExitCodeInvalidDataset
	}
	return constvars.ExitCodeOK
}
