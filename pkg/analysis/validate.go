// Package analysis holds the deterministic half of the pipeline: rule-based
// validation of attendance records and the summary aggregations. Everything
// here is a pure function over the record set.
package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kintai-works/kintai-engine/pkg/models"
)

const (
	columnCheckIn  = "出勤時刻"
	columnCheckOut = "退勤時刻"
	columnTimes    = "出勤時刻/退勤時刻"
	columnOvertime = "残業時間"
)

// overtimeAbnormalThreshold is the monthly overtime, in hours, above which
// a value is flagged. Strictly greater than; 100 itself passes.
const overtimeAbnormalThreshold = 100.0

// Validate applies the local data-quality rules to each record, in input
// order. A record can yield several findings. Findings reference the
// spreadsheet row the record was extracted from.
func Validate(records []models.AttendanceRecord) []models.ValidationFinding {
	var findings []models.ValidationFinding

	for _, r := range records {
		if r.CheckIn == "" {
			findings = append(findings, models.ValidationFinding{
				RowNumber:    r.RowNumber,
				Column:       columnCheckIn,
				ErrorType:    models.ErrorTypeMissingData,
				Description:  "出勤時刻が入力されていません",
				SuggestedFix: "出勤時刻を入力してください",
			})
		}
		if r.CheckOut == "" {
			findings = append(findings, models.ValidationFinding{
				RowNumber:    r.RowNumber,
				Column:       columnCheckOut,
				ErrorType:    models.ErrorTypeMissingData,
				Description:  "退勤時刻が入力されていません",
				SuggestedFix: "退勤時刻を入力してください",
			})
		}

		// A present time that is not HH:MM is reported on its own and
		// kept out of the earlier/later comparison below.
		inMin, inOK := parseClock(r.CheckIn)
		outMin, outOK := parseClock(r.CheckOut)
		if r.CheckIn != "" && !inOK {
			findings = append(findings, unparseableTimeFinding(r.RowNumber, columnCheckIn, r.CheckIn))
		}
		if r.CheckOut != "" && !outOK {
			findings = append(findings, unparseableTimeFinding(r.RowNumber, columnCheckOut, r.CheckOut))
		}

		if inOK && outOK && outMin < inMin {
			findings = append(findings, models.ValidationFinding{
				RowNumber:    r.RowNumber,
				Column:       columnTimes,
				ErrorType:    models.ErrorTypeLogicError,
				Description:  fmt.Sprintf("退勤時刻(%s)が出勤時刻(%s)より早い", r.CheckOut, r.CheckIn),
				SuggestedFix: "時刻を確認し、正しい時刻を入力してください",
			})
		}

		if r.OvertimeHours > overtimeAbnormalThreshold {
			findings = append(findings, models.ValidationFinding{
				RowNumber:    r.RowNumber,
				Column:       columnOvertime,
				ErrorType:    models.ErrorTypeAbnormalValue,
				Description:  fmt.Sprintf("残業時間が%g時間と異常に多い（過労死ライン超過）", r.OvertimeHours),
				SuggestedFix: "残業時間を確認してください。80時間超の場合は産業医面談が必要です",
			})
		}
	}

	return findings
}

func unparseableTimeFinding(row int, column, value string) models.ValidationFinding {
	return models.ValidationFinding{
		RowNumber:    row,
		Column:       column,
		ErrorType:    models.ErrorTypeAbnormalValue,
		Description:  fmt.Sprintf("%sの値「%s」を時刻として解釈できません", column, value),
		SuggestedFix: "HH:MM形式で入力してください",
	}
}

// parseClock parses a canonical "HH:MM" string into minutes since
// midnight. Anything else, including the verbatim pass-through values the
// normalizer surfaces, reports false.
func parseClock(s string) (int, bool) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, false
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 {
		return 0, false
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}
