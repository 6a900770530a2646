package exceptions

import (
	"errors"
	"testing"

	"rips-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type remissionRequest struct {
	Version string `validate:"required,oneof=3374 2275"`
	Number  int    `validate:"gte=1"`
}

func TestBuildNewCustomError(t *testing.T) {
	t.Run("Wraps The Cause", func(t *testing.T) {
		cause := errors.New("disk full")
		err := ErrWriteRipsFile(cause, "US000001.txt")

		assert.Equal(t, constvars.ErrClientCannotWriteRipsFiles, err.ClientMessage)
		assert.Equal(t, "failed to write RIPS file US000001.txt: disk full", err.DevMessage)
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("Without Cause", func(t *testing.T) {
		err := ErrUnknownFormatVersion(nil, "4000")

		assert.Equal(t, `unknown RIPS format version "4000"`, err.DevMessage)
		assert.Nil(t, err.Unwrap())
	})

	t.Run("Records The Caller", func(t *testing.T) {
		err := ErrInvalidPeriod("2024-03-31", "2024-03-01")

		assert.Contains(t, err.Location.File, "exceptions_test.go")
		assert.Contains(t, err.Location.FunctionName, "TestBuildNewCustomError")
		assert.Contains(t, err.Error(), "period end 2024-03-01 is before period start 2024-03-31")
	})
}

func TestFormatValidationErrors(t *testing.T) {
	err := validator.New().Struct(remissionRequest{Version: "4000"})
	require.Error(t, err)

	t.Run("First Error", func(t *testing.T) {
		assert.Equal(t, "version must be one of [3374, 2275]", FormatFirstValidationError(err))
	})

	t.Run("All Errors", func(t *testing.T) {
		assert.Equal(t, "version must be one of [3374, 2275], number must be greater than or equal to 1", FormatAllValidationErrors(err))
	})

	t.Run("Other Errors", func(t *testing.T) {
		assert.Equal(t, constvars.ErrDevInvalidInput, FormatFirstValidationError(errors.New("boom")))
		assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatAllValidationErrors(nil))
	})
}
