package analysis

import (
	"math"
	"sort"

	"github.com/kintai-works/kintai-engine/pkg/models"
)

// The aggregations below are recomputed in full on every request; nothing
// is cached or updated incrementally. Grouping keys are the raw department,
// employee ID, and date strings exactly as extracted.

// Monthly computes the whole-file summary. Working hours only accrue for
// records whose check-in and check-out both parsed; overtime accrues
// unconditionally. There is no paid-leave column in the source data, so
// the usage rate is fixed at zero.
func Monthly(records []models.AttendanceRecord) models.MonthlySummary {
	var totalWorking, totalOvertime float64
	days := make(map[string]bool)

	for _, r := range records {
		if hours, ok := workingHours(r); ok {
			totalWorking += hours
			days[r.Date] = true
		}
		totalOvertime += r.OvertimeHours
	}

	summary := models.MonthlySummary{
		TotalWorkingHours:  round1(totalWorking),
		TotalOvertimeHours: round1(totalOvertime),
		PaidLeaveUsageRate: 0,
	}
	if n := len(days); n > 0 {
		summary.AverageWorkingHours = round1(totalWorking / float64(n))
		summary.AverageOvertimeHours = round1(totalOvertime / float64(n))
	}
	return summary
}

// ByDepartment groups overtime by department, sorted by total overtime,
// heaviest first.
func ByDepartment(records []models.AttendanceRecord) []models.DepartmentSummary {
	type deptAcc struct {
		total     float64
		employees map[string]bool
	}
	groups := make(map[string]*deptAcc)
	var order []string

	for _, r := range records {
		acc, ok := groups[r.Department]
		if !ok {
			acc = &deptAcc{employees: make(map[string]bool)}
			groups[r.Department] = acc
			order = append(order, r.Department)
		}
		acc.total += r.OvertimeHours
		acc.employees[r.EmployeeID] = true
	}

	summaries := make([]models.DepartmentSummary, 0, len(order))
	for _, dept := range order {
		acc := groups[dept]
		n := len(acc.employees)
		summaries = append(summaries, models.DepartmentSummary{
			Department:           dept,
			TotalOvertimeHours:   round1(acc.total),
			AverageOvertimeHours: round1(acc.total / float64(n)),
			EmployeeCount:        n,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalOvertimeHours > summaries[j].TotalOvertimeHours
	})
	return summaries
}

// ByEmployee groups hours by employee ID, keeping the first-seen name and
// department for each ID. Output order is first appearance in the file.
func ByEmployee(records []models.AttendanceRecord) []models.EmployeeSummary {
	groups := make(map[string]*models.EmployeeSummary)
	var order []string

	for _, r := range records {
		emp, ok := groups[r.EmployeeID]
		if !ok {
			emp = &models.EmployeeSummary{
				EmployeeID:   r.EmployeeID,
				EmployeeName: r.EmployeeName,
				Department:   r.Department,
			}
			groups[r.EmployeeID] = emp
			order = append(order, r.EmployeeID)
		}
		if hours, ok := workingHours(r); ok {
			emp.TotalWorkingHours += hours
			emp.WorkingDays++
		}
		emp.TotalOvertimeHours += r.OvertimeHours
	}

	summaries := make([]models.EmployeeSummary, 0, len(order))
	for _, id := range order {
		emp := groups[id]
		emp.TotalWorkingHours = round1(emp.TotalWorkingHours)
		emp.TotalOvertimeHours = round1(emp.TotalOvertimeHours)
		summaries = append(summaries, *emp)
	}
	return summaries
}

// ByDay groups overtime by date, sorted ascending. Dates compare as
// strings, which orders correctly for the ISO dates the data uses.
func ByDay(records []models.AttendanceRecord) []models.DailySummary {
	type dayAcc struct {
		total     float64
		employees map[string]bool
	}
	groups := make(map[string]*dayAcc)

	for _, r := range records {
		acc, ok := groups[r.Date]
		if !ok {
			acc = &dayAcc{employees: make(map[string]bool)}
			groups[r.Date] = acc
		}
		acc.total += r.OvertimeHours
		acc.employees[r.EmployeeID] = true
	}

	summaries := make([]models.DailySummary, 0, len(groups))
	for date, acc := range groups {
		summaries = append(summaries, models.DailySummary{
			Date:               date,
			TotalOvertimeHours: round1(acc.total),
			EmployeeCount:      len(acc.employees),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date < summaries[j].Date
	})
	return summaries
}

// workingHours computes the hours worked for one record: check-out minus
// check-in minus break, clamped at zero so malformed data can never
// subtract from a total. ok is false when either time is absent or does
// not parse; such records contribute no working time.
func workingHours(r models.AttendanceRecord) (float64, bool) {
	inMin, inOK := parseClock(r.CheckIn)
	outMin, outOK := parseClock(r.CheckOut)
	if !inOK || !outOK {
		return 0, false
	}
	minutes := float64(outMin) - float64(inMin) - r.BreakMinutes
	return math.Max(0, minutes/60), true
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
