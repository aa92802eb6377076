package parser

import (
	"strconv"
	"strings"

	"github.com/kintai-works/kintai-engine/pkg/models"
)

// ExtractRecords walks the rows after the header and builds one record per
// non-blank row. A row whose id and name cells are both empty is treated
// as blank and skipped. Malformed cells never abort extraction; they
// degrade to empty strings or zero and are left to the validator.
func ExtractRecords(rows [][]string, headerRow int, mapping ColumnMapping) []models.AttendanceRecord {
	var records []models.AttendanceRecord

	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]

		id := strings.TrimSpace(cellAt(row, mapping.ID))
		name := strings.TrimSpace(cellAt(row, mapping.Name))
		if id == "" && name == "" {
			continue
		}

		records = append(records, models.AttendanceRecord{
			EmployeeID:    id,
			EmployeeName:  name,
			Department:    strings.TrimSpace(cellAt(row, mapping.Dept)),
			Date:          strings.TrimSpace(cellAt(row, mapping.Date)),
			CheckIn:       NormalizeTime(cellAt(row, mapping.CheckIn)),
			CheckOut:      NormalizeTime(cellAt(row, mapping.CheckOut)),
			BreakMinutes:  numericCell(row, mapping.Break),
			OvertimeHours: numericCell(row, mapping.Overtime),
			RowNumber:     i + 1, // 1-based spreadsheet row
		})
	}

	return records
}

// cellAt returns the raw cell text, or "" when the column was not resolved
// or the row is short.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func numericCell(row []string, idx int) float64 {
	s := strings.TrimSpace(cellAt(row, idx))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
