package utils

import (
	"time"

	"rips-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// LogStep runs fn and logs its outcome and duration under the given step name.
func LogStep(logger *zap.Logger, step string, generationID string, fn func() error) error {
	start := time.Now()

	logger.Debug("Step started",
		zap.String(constvars.LoggingGenerationIDKey, generationID),
		zap.String(constvars.LoggingStepKey, step),
	)

	err := fn()

	duration := time.Since(start)

	if err != nil {
		logger.Error("Step failed",
			zap.String(constvars.LoggingGenerationIDKey, generationID),
			zap.String(constvars.LoggingStepKey, step),
			zap.Duration(constvars.LoggingDurationKey, duration),
			zap.Error(err),
		)
		return err
	}

	logger.Debug("Step completed",
		zap.String(constvars.LoggingGenerationIDKey, generationID),
		zap.String(constvars.LoggingStepKey, step),
		zap.Duration(constvars.LoggingDurationKey, duration),
	)
	return nil
}
