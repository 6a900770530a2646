package rips

import (
	"context"
	"errors"
	"fmt"
	"rips-service/internal/app/contracts"
	"rips-service/internal/app/models"
	"rips-service/internal/app/services/core/rips/assembler"
	"rips-service/internal/app/services/core/rips/converter"
	"rips-service/internal/app/services/core/rips/formatter"
	"rips-service/internal/app/services/core/rips/schema"
	"rips-service/internal/app/services/core/rips/validation"
	"rips-service/internal/pkg/constvars"
	"rips-service/internal/pkg/dto/requests"
	"rips-service/internal/pkg/exceptions"
	"rips-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Policies groups the run-wide choices that change generated output.
type Policies struct {
	Numeric       formatter.NumericPolicy
	Deduplication assembler.DeduplicationPolicy
}

type ripsUsecase struct {
	BillingSource contracts.BillingSource
	FileSink      contracts.FileSink
	ReportBuilder contracts.ReportBuilder
	Notifier      contracts.GenerationNotifier
	Provider      models.Provider
	Policies      Policies
	Formatter     *formatter.Formatter
	Log           *zap.Logger
	now           func() time.Time
}

// NewRipsUsecase wires a generation usecase. reportBuilder and notifier are
// optional; without a report builder requests asking for a workbook fail.
func NewRipsUsecase(
	billingSource contracts.BillingSource,
	fileSink contracts.FileSink,
	reportBuilder contracts.ReportBuilder,
	notifier contracts.GenerationNotifier,
	provider models.Provider,
	policies Policies,
	logger *zap.Logger,
) contracts.RipsUsecase {
	return &ripsUsecase{
		BillingSource: billingSource,
		FileSink:      fileSink,
		ReportBuilder: reportBuilder,
		Notifier:      notifier,
		Provider:      provider,
		Policies:      policies,
		Formatter:     formatter.New(policies.Numeric),
		Log:           logger,
		now:           time.Now,
	}
}

// remission holds the parsed period and remission identity of one run.
type remission struct {
	From   time.Time
	To     time.Time
	Date   time.Time
	Number int
}

func parseRemission(from, to, remissionDate string, remissionNumber int) (remission, error) {
	start, err := utils.ParseRipsDate(from)
	if err != nil {
		return remission{}, exceptions.ErrCannotParseDate(err)
	}
	end, err := utils.ParseRipsDate(to)
	if err != nil {
		return remission{}, exceptions.ErrCannotParseDate(err)
	}
	if end.Before(start) {
		return remission{}, exceptions.ErrInvalidPeriod(from, to)
	}

	date := end
	if remissionDate != "" {
		date, err = utils.ParseRipsDate(remissionDate)
		if err != nil {
			return remission{}, exceptions.ErrCannotParseDate(err)
		}
	}
	if remissionNumber <= 0 {
		remissionNumber = 1
	}

	return remission{From: start, To: end, Date: date, Number: remissionNumber}, nil
}

func (uc *ripsUsecase) Generate(ctx context.Context, request *requests.GenerateRips) (*models.Generation, error) {
	uc.Log.Info("ripsUsecase.Generate called",
		zap.Any(constvars.LoggingRequestKey, request),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	version, err := schema.ParseVersion(request.Version)
	if err != nil {
		return nil, err
	}
	run, err := parseRemission(request.From, request.To, request.RemissionDate, request.RemissionNumber)
	if err != nil {
		return nil, err
	}
	if err := uc.requireCollaborators(true, request.IncludeReport); err != nil {
		return nil, err
	}

	generation := models.NewGeneration(version, run.From, run.To)
	generation.RemissionDate = run.Date
	generation.MarkProcessing()

	registry, dataset, err := uc.buildDataset(ctx, generation, version, run)
	if err != nil {
		return uc.fail(ctx, generation, err)
	}

	uc.validate(generation, registry, dataset)

	if err := uc.writeOutputs(ctx, generation, registry, dataset, run, request.IncludeReport); err != nil {
		return uc.fail(ctx, generation, err)
	}

	return uc.complete(ctx, generation), nil
}

func (uc *ripsUsecase) Validate(ctx context.Context, request *requests.ValidateRips) (*models.Generation, error) {
	uc.Log.Info("ripsUsecase.Validate called",
		zap.Any(constvars.LoggingRequestKey, request),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	version, err := schema.ParseVersion(request.Version)
	if err != nil {
		return nil, err
	}
	run, err := parseRemission(request.From, request.To, request.RemissionDate, 0)
	if err != nil {
		return nil, err
	}
	if err := uc.requireCollaborators(false, false); err != nil {
		return nil, err
	}

	generation := models.NewGeneration(version, run.From, run.To)
	generation.RemissionDate = run.Date
	generation.MarkProcessing()

	registry, dataset, err := uc.buildDataset(ctx, generation, version, run)
	if err != nil {
		generation.MarkError(err)
		return generation, err
	}

	uc.validate(generation, registry, dataset)
	generation.Files = []models.GeneratedFile{}
	generation.MarkCompleted()
	return generation, nil
}

// Convert generates the period in request.Version and writes it in
// request.Target. The returned generation carries the target version.
func (uc *ripsUsecase) Convert(ctx context.Context, request *requests.ConvertRips) (*models.Generation, error) {
	uc.Log.Info("ripsUsecase.Convert called",
		zap.Any(constvars.LoggingRequestKey, request),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	source, err := schema.ParseVersion(request.Version)
	if err != nil {
		return nil, err
	}
	target, err := schema.ParseVersion(request.Target)
	if err != nil {
		return nil, err
	}
	versionConverter, err := converter.New(source, target, uc.Provider)
	if err != nil {
		return nil, err
	}
	run, err := parseRemission(request.From, request.To, request.RemissionDate, request.RemissionNumber)
	if err != nil {
		return nil, err
	}
	if err := uc.requireCollaborators(true, request.IncludeReport); err != nil {
		return nil, err
	}

	generation := models.NewGeneration(target, run.From, run.To)
	generation.RemissionDate = run.Date
	generation.MarkProcessing()

	_, dataset, err := uc.buildDataset(ctx, generation, source, run)
	if err != nil {
		return uc.fail(ctx, generation, err)
	}

	converted, report := versionConverter.Convert(dataset)
	generation.Conversion = &report
	uc.Log.Info("ripsUsecase.Convert dataset converted",
		zap.String(constvars.LoggingGenerationIDKey, generation.ID.String()),
		zap.String(constvars.LoggingVersionKey, string(source)),
		zap.String(constvars.LoggingTargetKey, string(target)),
		zap.Bool("lossless", report.Lossless()),
	)

	uc.validate(generation, versionConverter.Target, converted)

	if err := uc.writeOutputs(ctx, generation, versionConverter.Target, converted, run, request.IncludeReport); err != nil {
		return uc.fail(ctx, generation, err)
	}

	return uc.complete(ctx, generation), nil
}

func (uc *ripsUsecase) requireCollaborators(writes, report bool) error {
	if uc.BillingSource == nil {
		return exceptions.ErrGenerationNotInitialized("billing source")
	}
	if writes && uc.FileSink == nil {
		return exceptions.ErrGenerationNotInitialized("file sink")
	}
	if report && uc.ReportBuilder == nil {
		return exceptions.ErrGenerationNotInitialized("report builder")
	}
	return nil
}

func (uc *ripsUsecase) buildDataset(ctx context.Context, generation *models.Generation, version models.FormatVersion, run remission) (*schema.Registry, *models.RipsDataset, error) {
	registry, err := schema.For(version)
	if err != nil {
		return nil, nil, err
	}

	var batch *models.BillingBatch
	err = utils.LogStep(uc.Log, "load billing data", generation.ID.String(), func() error {
		batch, err = uc.BillingSource.Load(ctx, models.BillingFilter{From: run.From, To: run.To})
		if err != nil {
			var customErr *exceptions.CustomError
			if errors.As(err, &customErr) {
				return err
			}
			return exceptions.ErrLoadBillingData(err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	generation.Invoices = len(batch.Invoices)
	builder := assembler.NewBuilder(registry, uc.Provider, run.Date, uc.Policies.Deduplication)
	builder.AddBatch(batch)
	dataset := builder.Dataset()

	uc.Log.Info("ripsUsecase.buildDataset dataset built",
		zap.String(constvars.LoggingGenerationIDKey, generation.ID.String()),
		zap.String(constvars.LoggingVersionKey, string(version)),
		zap.Int(constvars.LoggingInvoiceCountKey, generation.Invoices),
		zap.Int(constvars.LoggingWarningCountKey, len(dataset.Warnings)),
	)
	return registry, dataset, nil
}

func (uc *ripsUsecase) validate(generation *models.Generation, registry *schema.Registry, dataset *models.RipsDataset) {
	result := validation.New(registry, uc.Formatter).Validate(dataset)
	generation.Validation = &result

	uc.Log.Info("ripsUsecase.validate dataset validated",
		zap.String(constvars.LoggingGenerationIDKey, generation.ID.String()),
		zap.Bool("is_valid", result.IsValid),
		zap.Int(constvars.LoggingErrorCountKey, len(result.Errors)),
		zap.Int(constvars.LoggingWarningCountKey, len(result.Warnings)),
	)
}

// writeOutputs renders and stores every file of the run. Invalid datasets are
// still written so they can be inspected.
func (uc *ripsUsecase) writeOutputs(ctx context.Context, generation *models.Generation, registry *schema.Registry, dataset *models.RipsDataset, run remission, includeReport bool) error {
	files, err := assembler.New(registry, uc.Formatter).Files(dataset, uc.Provider, run.Date, run.Number, uc.now())
	if err != nil {
		return err
	}

	validationFile, err := uc.validationFile(generation, run)
	if err != nil {
		return err
	}
	files = append(files, *validationFile)

	if includeReport {
		var report *models.GeneratedFile
		err = utils.LogStep(uc.Log, "build report", generation.ID.String(), func() error {
			report, err = uc.ReportBuilder.BuildReport(ctx, generation, dataset)
			return err
		})
		if err != nil {
			return err
		}
		files = append(files, *report)
	}

	for i := range files {
		location, err := uc.FileSink.Write(ctx, files[i])
		if err != nil {
			return err
		}
		files[i].Location = location
	}
	generation.Files = files
	return nil
}

func (uc *ripsUsecase) validationFile(generation *models.Generation, run remission) (*models.GeneratedFile, error) {
	content, err := json.MarshalIndent(generation.Validation, "", "  ")
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	return &models.GeneratedFile{
		Code:        constvars.RipsValidationFileCode,
		Name:        fmt.Sprintf(constvars.RipsValidationFileName, generation.Version, run.Date.Format(constvars.RipsCompactLayout)),
		ContentType: constvars.RipsJSONContentType,
		Records:     len(generation.Validation.Errors) + len(generation.Validation.Warnings),
		Content:     content,
	}, nil
}

func (uc *ripsUsecase) complete(ctx context.Context, generation *models.Generation) *models.Generation {
	generation.MarkCompleted()
	uc.Log.Info("ripsUsecase generation completed",
		zap.String(constvars.LoggingGenerationIDKey, generation.ID.String()),
		zap.Int("file_count", len(generation.Files)),
	)
	uc.notify(ctx, generation)
	return generation
}

func (uc *ripsUsecase) fail(ctx context.Context, generation *models.Generation, err error) (*models.Generation, error) {
	generation.MarkError(err)
	uc.Log.Error("ripsUsecase generation failed",
		zap.String(constvars.LoggingGenerationIDKey, generation.ID.String()),
		zap.Error(err),
	)
	uc.notify(ctx, generation)
	return generation, err
}

// notify never changes the outcome of a run; a failed publish is logged only.
func (uc *ripsUsecase) notify(ctx context.Context, generation *models.Generation) {
	if uc.Notifier == nil {
		return
	}
	if err := uc.Notifier.NotifyGeneration(ctx, generation); err != nil {
		uc.Log.Warn("ripsUsecase.notify error publishing generation",
			zap.String(constvars.LoggingGenerationIDKey, generation.ID.String()),
			zap.Error(err),
		)
	}
}
