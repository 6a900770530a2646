package billingsource

import (
	"context"
	"os"
	"rips-service/internal/app/contracts"
	"rips-service/internal/app/models"
	"rips-service/internal/pkg/constvars"
	"rips-service/internal/pkg/dto/requests"
	"rips-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type jsonBillingSource struct {
	Path string
	Log  *zap.Logger
}

// NewJSONBillingSource reads a billing export document from disk on every
// Load and keeps the invoices matched by the filter.
func NewJSONBillingSource(path string, logger *zap.Logger) contracts.BillingSource {
	return &jsonBillingSource{
		Path: path,
		Log:  logger,
	}
}

func (s *jsonBillingSource) Load(ctx context.Context, filter models.BillingFilter) (*models.BillingBatch, error) {
	s.Log.Info("jsonBillingSource.Load called",
		zap.String(constvars.LoggingLocationKey, s.Path),
	)

	content, err := os.ReadFile(s.Path)
	if err != nil {
		s.Log.Error("jsonBillingSource.Load error reading export",
			zap.String(constvars.LoggingLocationKey, s.Path),
			zap.Error(err),
		)
		return nil, exceptions.ErrOpenBillingSource(err, s.Path)
	}

	var export requests.BillingExport
	if err := json.UnmarshalContext(ctx, content, &export); err != nil {
		s.Log.Error("jsonBillingSource.Load error parsing export",
			zap.String(constvars.LoggingLocationKey, s.Path),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	batch, err := batchFromExport(&export)
	if err != nil {
		s.Log.Error("jsonBillingSource.Load error converting export",
			zap.String(constvars.LoggingLocationKey, s.Path),
			zap.Error(err),
		)
		return nil, err
	}

	filtered := batch.Filter(filter)
	s.Log.Info("jsonBillingSource.Load succeeded",
		zap.Int(constvars.LoggingInvoiceCountKey, len(filtered.Invoices)),
	)
	return filtered, nil
}
