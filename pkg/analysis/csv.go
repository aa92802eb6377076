package analysis

import (
	"strconv"
	"strings"

	"github.com/kintai-works/kintai-engine/pkg/models"
)

// csvHeader is the fixed column order the LLM collaborator is prompted
// against. Changing it would desynchronize the prompts.
var csvHeader = []string{"社員ID", "氏名", "部署", "日付", "出勤時刻", "退勤時刻", "休憩分", "残業時間"}

// RenderCSV renders the record set as the CSV text sent to the LLM
// collaborator. Fields are comma-joined without quoting; the collaborator
// contract predates quoting and the prompts describe the data that way.
func RenderCSV(records []models.AttendanceRecord) string {
	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))

	for _, r := range records {
		b.WriteByte('\n')
		b.WriteString(strings.Join([]string{
			r.EmployeeID,
			r.EmployeeName,
			r.Department,
			r.Date,
			r.CheckIn,
			r.CheckOut,
			formatNumber(r.BreakMinutes),
			formatNumber(r.OvertimeHours),
		}, ","))
	}

	return b.String()
}

// formatNumber renders a float the way the sheet had it: no exponent, no
// trailing zeros, "60" rather than "60.000000".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
