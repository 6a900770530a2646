package report

import (
	"context"
	"fmt"
	"rips-service/internal/app/contracts"
	"rips-service/internal/app/models"
	"rips-service/internal/app/services/core/rips/formatter"
	"rips-service/internal/app/services/core/rips/schema"
	"rips-service/internal/pkg/constvars"
	"rips-service/internal/pkg/exceptions"
	"rips-service/internal/pkg/utils"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	summarySheet    = "Resumen"
	validationSheet = "Validacion"
	defaultSheet    = "Sheet1"
	reportFileCode  = "INSPECCION"
)

type excelReportBuilder struct {
	Formatter *formatter.Formatter
	Log       *zap.Logger
}

// NewExcelReportBuilder renders a workbook with a summary sheet, the
// validation messages and one sheet per populated record type, each cell
// holding the exact token written to the flat file.
func NewExcelReportBuilder(fieldFormatter *formatter.Formatter, logger *zap.Logger) contracts.ReportBuilder {
	if fieldFormatter == nil {
		fieldFormatter = formatter.Default()
	}
	return &excelReportBuilder{
		Formatter: fieldFormatter,
		Log:       logger,
	}
}

func (b *excelReportBuilder) BuildReport(ctx context.Context, generation *models.Generation, dataset *models.RipsDataset) (*models.GeneratedFile, error) {
	b.Log.Info("excelReportBuilder.BuildReport called",
		zap.String(constvars.LoggingGenerationIDKey, generation.ID.String()),
		zap.String(constvars.LoggingVersionKey, string(dataset.Version)),
	)

	registry, err := schema.For(dataset.Version)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, exceptions.ErrBuildReport(err)
	}

	if err := f.SetSheetName(defaultSheet, summarySheet); err != nil {
		return nil, exceptions.ErrBuildReport(err)
	}
	totalRecords, err := b.writeSummary(f, registry, generation, dataset, headerStyle)
	if err != nil {
		return nil, exceptions.ErrBuildReport(err)
	}
	if err := b.writeValidation(f, generation.Validation, headerStyle); err != nil {
		return nil, exceptions.ErrBuildReport(err)
	}
	for _, code := range registry.Codes() {
		if dataset.Count(code) == 0 {
			continue
		}
		if err := b.writeRecordType(f, registry, code, dataset.Get(code), headerStyle); err != nil {
			return nil, exceptions.ErrBuildReport(err)
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, exceptions.ErrBuildReport(err)
	}

	return &models.GeneratedFile{
		Code:        reportFileCode,
		Name:        fmt.Sprintf(constvars.RipsReportFileNameFormat, dataset.Version, fileDate(generation).Format(constvars.RipsCompactLayout)),
		ContentType: constvars.RipsReportContentType,
		Records:     totalRecords,
		Content:     buffer.Bytes(),
	}, nil
}

func (b *excelReportBuilder) writeSummary(f *excelize.File, registry *schema.Registry, generation *models.Generation, dataset *models.RipsDataset, headerStyle int) (int, error) {
	rows := [][]interface{}{
		{"Generacion", generation.ID.String()},
		{"Version", string(dataset.Version)},
		{"Periodo", utils.FormatRipsDate(generation.PeriodStart) + " / " + utils.FormatRipsDate(generation.PeriodEnd)},
		{"Facturas", generation.Invoices},
		{},
		{"Tipo", "Registros"},
	}
	headerRow := len(rows)

	total := 0
	for _, code := range registry.Codes() {
		count := dataset.Count(code)
		if count == 0 {
			continue
		}
		total += count
		rows = append(rows, []interface{}{code, count})
	}
	rows = append(rows, []interface{}{"Total", total})

	if err := setRows(f, summarySheet, rows); err != nil {
		return 0, err
	}
	return total, styleRow(f, summarySheet, headerRow, 2, headerStyle)
}

func (b *excelReportBuilder) writeValidation(f *excelize.File, result *models.ValidationResult, headerStyle int) error {
	if _, err := f.NewSheet(validationSheet); err != nil {
		return err
	}

	rows := [][]interface{}{{"Nivel", "Mensaje"}}
	if result != nil {
		for _, message := range result.Errors {
			rows = append(rows, []interface{}{"error", message})
		}
		for _, message := range result.Warnings {
			rows = append(rows, []interface{}{"advertencia", message})
		}
	}

	if err := setRows(f, validationSheet, rows); err != nil {
		return err
	}
	if err := f.SetColWidth(validationSheet, "B", "B", 100); err != nil {
		return err
	}
	return styleRow(f, validationSheet, 1, 2, headerStyle)
}

func (b *excelReportBuilder) writeRecordType(f *excelize.File, registry *schema.Registry, code string, records []models.Record, headerStyle int) error {
	if _, err := f.NewSheet(code); err != nil {
		return err
	}

	fields := registry.GetFileStructure(code)
	header := make([]interface{}, 0, len(fields))
	for _, field := range fields {
		header = append(header, field.Name)
	}

	rows := make([][]interface{}, 0, len(records)+1)
	rows = append(rows, header)
	for _, record := range records {
		tokens := b.Formatter.FormatRecord(record, fields)
		row := make([]interface{}, 0, len(tokens))
		for _, token := range tokens {
			row = append(row, token)
		}
		rows = append(rows, row)
	}

	if err := setRows(f, code, rows); err != nil {
		return err
	}
	return styleRow(f, code, 1, len(fields), headerStyle)
}

func setRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

func styleRow(f *excelize.File, sheet string, row, columns, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(columns, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, last, style)
}

func fileDate(generation *models.Generation) time.Time {
	if generation.RemissionDate.IsZero() {
		return generation.PeriodEnd
	}
	return generation.RemissionDate
}
