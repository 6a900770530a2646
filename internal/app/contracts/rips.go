package contracts

import (
	"context"
	"rips-service/internal/app/models"
	"rips-service/internal/pkg/dto/requests"
)

type RipsUsecase interface {
	Generate(ctx context.Context, request *requests.GenerateRips) (*models.Generation, error)
	Validate(ctx context.Context, request *requests.ValidateRips) (*models.Generation, error)
	Convert(ctx context.Context, request *requests.ConvertRips) (*models.Generation, error)
}

// BillingSource loads the invoices of a remission with everything they
// reference.
type BillingSource interface {
	Load(ctx context.Context, filter models.BillingFilter) (*models.BillingBatch, error)
}

// FileSink stores one generated file and returns where it ended up.
type FileSink interface {
	Write(ctx context.Context, file models.GeneratedFile) (string, error)
}

// ReportBuilder renders an inspection workbook of a dataset. The usecase
// stores the result through the FileSink like any other file.
type ReportBuilder interface {
	BuildReport(ctx context.Context, generation *models.Generation, dataset *models.RipsDataset) (*models.GeneratedFile, error)
}

type GenerationNotifier interface {
	NotifyGeneration(ctx context.Context, generation *models.Generation) error
}
