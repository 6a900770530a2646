package storage

import (
	"context"
	"os"
	"path/filepath"
	"rips-service/internal/app/contracts"
	"rips-service/internal/app/models"
	"rips-service/internal/pkg/constvars"
	"rips-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type localStorage struct {
	Dir string
	Log *zap.Logger
}

// NewLocalStorage writes generated files into a directory, creating it when
// needed. Existing files with the same name are replaced.
func NewLocalStorage(dir string, logger *zap.Logger) contracts.FileSink {
	return &localStorage{
		Dir: dir,
		Log: logger,
	}
}

func (s *localStorage) Write(ctx context.Context, file models.GeneratedFile) (string, error) {
	location := filepath.Join(s.Dir, filepath.Base(file.Name))
	s.Log.Info("localStorage.Write called",
		zap.String(constvars.LoggingFileNameKey, location),
		zap.Int(constvars.LoggingRecordCountKey, file.Records),
	)

	if err := ctx.Err(); err != nil {
		return "", exceptions.ErrWriteRipsFile(err, file.Name)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		s.Log.Error("localStorage.Write error preparing directory",
			zap.String(constvars.LoggingLocationKey, s.Dir),
			zap.Error(err),
		)
		return "", exceptions.ErrPrepareOutput(err, s.Dir)
	}
	if err := os.WriteFile(location, file.Content, 0o644); err != nil {
		s.Log.Error("localStorage.Write error writing file",
			zap.String(constvars.LoggingFileNameKey, location),
			zap.Error(err),
		)
		return "", exceptions.ErrWriteRipsFile(err, file.Name)
	}

	return location, nil
}
