package logger

import (
	"testing"

	"rips-service/internal/app/config"
	"rips-service/internal/pkg/constvars"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testConfigs(env, level string) (*config.DriverConfig, *config.InternalConfig) {
	driverConfig := &config.DriverConfig{
		Logger: config.Logger{
			Level:               level,
			OutputFileName:      "rips.log",
			OutputErrorFileName: "rips_error.log",
		},
	}
	internalConfig := &config.InternalConfig{App: config.App{Env: env, Version: "v1.0"}}
	return driverConfig, internalConfig
}

func TestBuildZapConfig(t *testing.T) {
	t.Run("Development Writes To Stderr", func(t *testing.T) {
		cfg := buildZapConfig(testConfigs(constvars.AppEnvDevelopment, "debug"))
		assert.True(t, cfg.Development)
		assert.Equal(t, []string{"stderr"}, cfg.OutputPaths)
		assert.Equal(t, zap.DebugLevel, cfg.Level.Level())
	})

	t.Run("Production Writes To Files", func(t *testing.T) {
		cfg := buildZapConfig(testConfigs(constvars.AppEnvProduction, "warn"))
		assert.False(t, cfg.Development)
		assert.Equal(t, []string{"rips.log"}, cfg.OutputPaths)
		assert.Equal(t, []string{"stderr", "rips_error.log"}, cfg.ErrorOutputPaths)
		assert.Equal(t, zap.WarnLevel, cfg.Level.Level())
	})

	t.Run("Unknown Level Falls Back To Info", func(t *testing.T) {
		cfg := buildZapConfig(testConfigs(constvars.AppEnvDevelopment, "verbose"))
		assert.Equal(t, zap.InfoLevel, cfg.Level.Level())
	})
}

func TestNewLogrusLogger(t *testing.T) {
	t.Run("Production Uses JSON", func(t *testing.T) {
		_, internalConfig := testConfigs(constvars.AppEnvProduction, "info")
		logger := NewLogrusLogger(internalConfig)
		assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
	})

	t.Run("Development Uses Text", func(t *testing.T) {
		_, internalConfig := testConfigs(constvars.AppEnvDevelopment, "info")
		logger := NewLogrusLogger(internalConfig)
		assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
	})
}
