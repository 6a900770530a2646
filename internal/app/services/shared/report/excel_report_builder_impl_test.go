package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"rips-service/internal/app/models"
	"rips-service/internal/app/services/core/rips/schema"
	"rips-service/internal/pkg/constvars"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func legacyDataset() *models.RipsDataset {
	dataset := models.NewRipsDataset(models.FormatVersionLegacy)
	dataset.Append("AF", models.Record{
		schema.FieldProviderCode:  "110010000001",
		schema.FieldInvoiceNumber: "FE1001",
		schema.FieldNetValue:      decimal.NewFromInt(45000),
		schema.FieldFileCode:      "AF",
		schema.FieldRecordCount:   1,
	})
	dataset.Append("US", models.Record{
		schema.FieldDocumentType:   "CC",
		schema.FieldDocumentNumber: "123",
		schema.FieldFirstName:      `Ana "la grande"`,
	})
	return dataset
}

func openWorkbook(t *testing.T, file *models.GeneratedFile) *excelize.File {
	workbook, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	t.Cleanup(func() { workbook.Close() })
	return workbook
}

func TestReportNamedByRemissionDate(t *testing.T) {
	builder := NewExcelReportBuilder(nil, zap.NewNop())
	generation := models.NewGeneration(models.FormatVersionLegacy, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))
	generation.RemissionDate = time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)

	file, err := builder.BuildReport(context.Background(), generation, legacyDataset())
	require.NoError(t, err)
	assert.Equal(t, "RIPS_3374_20240405_inspeccion.xlsx", file.Name)
}

func TestBuildReport(t *testing.T) {
	builder := NewExcelReportBuilder(nil, zap.NewNop())
	generation := models.NewGeneration(models.FormatVersionLegacy, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))
	generation.Invoices = 1
	generation.Validation = &models.ValidationResult{
		Errors:   []string{"record type AC is mandatory but has no records"},
		Warnings: []string{"AF: invoice FE1001 references an unknown entity"},
	}

	file, err := builder.BuildReport(context.Background(), generation, legacyDataset())
	require.NoError(t, err)

	t.Run("File Metadata", func(t *testing.T) {
		assert.Equal(t, "RIPS_3374_20240331_inspeccion.xlsx", file.Name)
		assert.Equal(t, constvars.RipsReportContentType, file.ContentType)
		assert.Equal(t, 2, file.Records)
		assert.NotEmpty(t, file.Content)
	})

	t.Run("One Sheet Per Populated Record Type", func(t *testing.T) {
		workbook := openWorkbook(t, file)
		assert.Equal(t, []string{"Resumen", "Validacion", "AF", "US"}, workbook.GetSheetList())
	})

	t.Run("Summary Counts", func(t *testing.T) {
		workbook := openWorkbook(t, file)
		rows, err := workbook.GetRows(summarySheet)
		require.NoError(t, err)
		assert.Equal(t, []string{"Generacion", generation.ID.String()}, rows[0])
		assert.Equal(t, []string{"Periodo", "2024-03-01 / 2024-03-31"}, rows[2])
		assert.Equal(t, []string{"Tipo", "Registros"}, rows[5])
		assert.Equal(t, []string{"AF", "1"}, rows[6])
		assert.Equal(t, []string{"US", "1"}, rows[7])
		assert.Equal(t, []string{"Total", "2"}, rows[8])
	})

	t.Run("Validation Messages", func(t *testing.T) {
		workbook := openWorkbook(t, file)
		rows, err := workbook.GetRows(validationSheet)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "error", rows[1][0])
		assert.Equal(t, "advertencia", rows[2][0])
	})

	t.Run("Cells Hold Formatted Tokens", func(t *testing.T) {
		workbook := openWorkbook(t, file)

		header, err := workbook.GetCellValue("US", "A1")
		require.NoError(t, err)
		assert.Equal(t, schema.FieldDocumentType, header)

		rows, err := workbook.GetRows("US")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "CC", rows[1][0])
		assert.Contains(t, rows[1], "Ana la grande")

		af, err := workbook.GetRows("AF")
		require.NoError(t, err)
		assert.Contains(t, af[1], "45000")
	})
}

func TestBuildReportUnknownVersion(t *testing.T) {
	builder := NewExcelReportBuilder(nil, zap.NewNop())
	generation := models.NewGeneration(models.FormatVersion("1999"), time.Now(), time.Now())

	_, err := builder.BuildReport(context.Background(), generation, models.NewRipsDataset(models.FormatVersion("1999")))
	assert.Error(t, err)
}
