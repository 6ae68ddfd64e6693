package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/veridoc-ai/veridoc/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// run exports.
type Service struct {
	records repository.RecordRepository
	docs    repository.DocumentRepository
	logger  *slog.Logger
}

func NewService(records repository.RecordRepository, docs repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{records: records, docs: docs, logger: logger}
}

// ExportRunXLSX returns an XLSX workbook (as bytes) with one row per
// extracted field across all of the run's records.
func (s *Service) ExportRunXLSX(ctx context.Context, runID uuid.UUID) ([]byte, error) {
	start := time.Now()

	recs, err := s.records.ListForRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Extractions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Document",
		"Record Status",
		"Field",
		"Type",
		"Value",
		"Confidence",
		"Field Status",
		"Validation Errors",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, rec := range recs {
		docName := rec.DocumentID.String()
		if doc, err := s.docs.GetByID(ctx, rec.DocumentID); err == nil && doc != nil {
			docName = doc.FileURL
		}

		fields, err := s.records.ListFields(ctx, rec.ID)
		if err != nil {
			return nil, fmt.Errorf("query fields for record %s: %w", rec.ID, err)
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if len(fields) == 0 {
			write(1, docName)
			write(2, string(rec.RecordStatus))
			row++
			continue
		}

		for _, fld := range fields {
			var errMsgs []string
			for _, ve := range fld.ValidationErrors {
				errMsgs = append(errMsgs, fmt.Sprintf("%s: %s", ve.Rule, ve.Message))
			}

			write(1, docName)
			write(2, string(rec.RecordStatus))
			write(3, fld.FieldName)
			write(4, fld.FieldType)
			write(5, truncate(string(fld.ExtractedValue), 140))
			write(6, fmt.Sprintf("%.2f", fld.Confidence))
			write(7, string(fld.FieldStatus))
			write(8, truncate(strings.Join(errMsgs, "; "), 200))
			row++
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 48) // document
	_ = f.SetColWidth(sheet, "B", "B", 16) // record status
	_ = f.SetColWidth(sheet, "C", "C", 24) // field
	_ = f.SetColWidth(sheet, "E", "E", 40) // value
	_ = f.SetColWidth(sheet, "H", "H", 48) // errors

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.run.done",
		"run_id", runID,
		"records", len(recs),
		"rows", row-2,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
