package main

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"rips-service/internal/app/config"
	"rips-service/internal/app/models"
	"rips-service/internal/pkg/constvars"
	"rips-service/internal/pkg/dto/requests"
	"rips-service/internal/pkg/dto/responses"
	"rips-service/internal/pkg/exceptions"
	"rips-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Rips: config.AppRips{
			DefaultVersion: constvars.RipsVersionCurrent,
			BillingSource:  constvars.RipsBillingSourceMongo,
			OutputDir:      "./rips",
		},
	}
}

func TestParseOptions(t *testing.T) {
	t.Run("Defaults From Config", func(t *testing.T) {
		opts, err := parseOptions([]string{"-from", "2024-03-01", "-to", "2024-03-31"}, testConfig(), io.Discard)
		require.NoError(t, err)

		assert.Equal(t, constvars.RipsVersionCurrent, opts.Version)
		assert.Equal(t, "./rips", opts.Output)
		assert.Equal(t, 1, opts.RemissionNumber)
		assert.Equal(t, modeGenerate, opts.mode())
		assert.Equal(t, constvars.RipsBillingSourceMongo, opts.billingSource(testConfig()))
	})

	t.Run("Input Selects JSON Source", func(t *testing.T) {
		opts, err := parseOptions([]string{"-input", "billing.json"}, testConfig(), io.Discard)
		require.NoError(t, err)
		assert.Equal(t, constvars.RipsBillingSourceJSON, opts.billingSource(testConfig()))
	})

	t.Run("Modes", func(t *testing.T) {
		opts, err := parseOptions([]string{"-validate-only"}, testConfig(), io.Discard)
		require.NoError(t, err)
		assert.Equal(t, modeValidate, opts.mode())

		opts, err = parseOptions([]string{"-version", "3374", "-convert", "2275", "-report"}, testConfig(), io.Discard)
		require.NoError(t, err)
		assert.Equal(t, modeConvert, opts.mode())
		request := opts.convertRequest()
		assert.Equal(t, "3374", request.Version)
		assert.Equal(t, "2275", request.Target)
		assert.True(t, request.IncludeReport)
	})

	t.Run("Rejects Validate And Convert Together", func(t *testing.T) {
		_, err := parseOptions([]string{"-validate-only", "-convert", "3374"}, testConfig(), io.Discard)
		assert.Error(t, err)
	})

	t.Run("Rejects Unknown Flags", func(t *testing.T) {
		_, err := parseOptions([]string{"-format", "csv"}, testConfig(), io.Discard)
		assert.Error(t, err)
	})
}

func TestBootstrapingTheApp(t *testing.T) {
	bootstrapWith := func(rips config.AppRips) *config.Bootstrap {
		return &config.Bootstrap{
			Logger:         zap.NewNop(),
			InternalConfig: &config.InternalConfig{Rips: rips},
		}
	}
	jsonInput := &options{Input: "export.json"}

	t.Run("Local Sink With JSON Input", func(t *testing.T) {
		usecase, err := bootstrapingTheApp(bootstrapWith(config.AppRips{FileSink: constvars.RipsFileSinkLocal, OutputDir: t.TempDir()}), jsonInput)
		require.NoError(t, err)
		assert.NotNil(t, usecase)
	})

	t.Run("Unknown Settings Are Custom Errors", func(t *testing.T) {
		cases := []struct {
			name string
			rips config.AppRips
			opts *options
			dev  string
		}{
			{"Numeric Policy", config.AppRips{NumericPolicy: "ceil"}, jsonInput, `unknown numeric policy "ceil"`},
			{"Deduplication Policy", config.AppRips{DeduplicationPolicy: "last-wins"}, jsonInput, `unknown deduplication policy "last-wins"`},
			{"Billing Source", config.AppRips{BillingSource: "csv", FileSink: constvars.RipsFileSinkLocal}, &options{}, `unknown billing source "csv"`},
			{"File Sink", config.AppRips{FileSink: "ftp"}, jsonInput, `unknown file sink "ftp"`},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				usecase, err := bootstrapingTheApp(bootstrapWith(tc.rips), tc.opts)

				assert.Nil(t, usecase)
				var customErr *exceptions.CustomError
				require.True(t, errors.As(err, &customErr))
				assert.Equal(t, constvars.ErrClientInvalidConfiguration, customErr.ClientMessage)
				assert.Equal(t, tc.dev, customErr.DevMessage)
			})
		}
	})
}

func TestExitCode(t *testing.T) {
	valid := &models.Generation{Validation: &models.ValidationResult{IsValid: true}}
	invalid := &models.Generation{Validation: &models.ValidationResult{IsValid: false, Errors: []string{"AF: missing"}}}

	assert.Equal(t, constvars.ExitCodeOK, exitCode(valid, nil))
	assert.Equal(t, constvars.ExitCodeInvalidDataset, exitCode(invalid, nil))
	assert.Equal(t, constvars.ExitCodeFailure, exitCode(invalid, errors.New("boom")))
	assert.Equal(t, constvars.ExitCodeFailure, exitCode(nil, errors.New("boom")))
}

func TestWriteResponse(t *testing.T) {
	t.Run("Success Carries The Generation", func(t *testing.T) {
		var buffer bytes.Buffer
		generation := &models.Generation{Version: models.FormatVersionLegacy, Status: models.GenerationStatusCompleted}

		require.NoError(t, writeResponse(&buffer, generation, nil))

		var response responses.ResponseDTO
		require.NoError(t, json.Unmarshal(buffer.Bytes(), &response))
		assert.True(t, response.Success)
		assert.Empty(t, response.Message)
		data, ok := response.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "3374", data["version"])
	})

	t.Run("Failure Uses The Client Message", func(t *testing.T) {
		var buffer bytes.Buffer

		require.NoError(t, writeResponse(&buffer, nil, exceptions.ErrInvalidPeriod("2024-03-31", "2024-03-01")))

		var response responses.ResponseDTO
		require.NoError(t, json.Unmarshal(buffer.Bytes(), &response))
		assert.False(t, response.Success)
		assert.Equal(t, constvars.ErrClientInvalidPeriod, response.Message)
		assert.Nil(t, response.Data)
	})

	t.Run("Input Errors List Every Field", func(t *testing.T) {
		var buffer bytes.Buffer
		err := exceptions.ErrInputValidation(utils.ValidateStruct(&requests.GenerateRips{Version: "3374"}))

		require.NoError(t, writeResponse(&buffer, nil, err))

		var response responses.ResponseDTO
		require.NoError(t, json.Unmarshal(buffer.Bytes(), &response))
		assert.Equal(t, "from is required, to is required", response.Message)
	})
}
