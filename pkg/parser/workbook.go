// Package parser turns uploaded attendance spreadsheets into normalized
// attendance records: it reads the first sheet as a raw grid, locates the
// header row, and extracts one record per data row.
package parser

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/kintai-works/kintai-engine/pkg/models"
)

// Parser reads attendance workbooks. The logger is an observability hook
// only; the resolution and extraction logic itself is pure.
type Parser struct {
	logger *zap.Logger
}

// New creates a Parser. Pass nil to run without logging.
func New(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger.Named("parser")}
}

// Parse reads the first sheet of an xlsx workbook and returns the
// normalized records. An empty (non-nil error-free) result means no header
// row could be located or no data rows followed it; callers surface that
// as a "no data" condition rather than a failure.
func (p *Parser) Parse(data []byte) ([]models.AttendanceRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}

	// Raw cell values keep time serials as plain decimals instead of
	// whatever display format the sheet happens to use.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	header, ok := ResolveHeader(rows)
	if !ok {
		p.logger.Warn("no header row found",
			zap.String("sheet", sheet),
			zap.Int("rows", len(rows)))
		return nil, nil
	}

	p.logger.Debug("header row resolved",
		zap.String("sheet", sheet),
		zap.Int("row_index", header.RowIndex),
		zap.Int("matched_columns", header.Mapping.Resolved()))

	records := ExtractRecords(rows, header.RowIndex, header.Mapping)

	// Sample the first few records, plus any with a missing time, so
	// normalization issues show up in the logs without dumping the sheet.
	for i, r := range records {
		if i >= 3 && r.CheckIn != "" && r.CheckOut != "" {
			continue
		}
		p.logger.Debug("extracted record",
			zap.Int("row", r.RowNumber),
			zap.String("employee_id", r.EmployeeID),
			zap.String("check_in", r.CheckIn),
			zap.String("check_out", r.CheckOut))
	}

	p.logger.Info("workbook parsed",
		zap.String("sheet", sheet),
		zap.Int("records", len(records)))

	return records, nil
}
