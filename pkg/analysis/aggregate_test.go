package analysis

import (
	"math"
	"testing"

	"github.com/kintai-works/kintai-engine/pkg/models"
)

func rec(id, name, dept, date, in, out string, breakMin, overtime float64) models.AttendanceRecord {
	return models.AttendanceRecord{
		EmployeeID:    id,
		EmployeeName:  name,
		Department:    dept,
		Date:          date,
		CheckIn:       in,
		CheckOut:      out,
		BreakMinutes:  breakMin,
		OvertimeHours: overtime,
	}
}

func TestMonthly_SingleCleanDay(t *testing.T) {
	records := []models.AttendanceRecord{
		rec("E001", "山田", "開発部", "2024-11-01", "09:00", "18:00", 60, 0),
	}

	m := Monthly(records)
	if m.TotalWorkingHours != 8.0 {
		t.Errorf("totalWorkingHours = %g, want 8.0", m.TotalWorkingHours)
	}
	if m.AverageWorkingHours != 8.0 {
		t.Errorf("averageWorkingHours = %g, want 8.0", m.AverageWorkingHours)
	}
	if m.PaidLeaveUsageRate != 0 {
		t.Errorf("paidLeaveUsageRate = %g, want 0", m.PaidLeaveUsageRate)
	}
}

func TestMonthly_RecordsMissingTimesExcluded(t *testing.T) {
	records := []models.AttendanceRecord{
		rec("E001", "山田", "開発部", "2024-11-01", "09:00", "18:00", 60, 2),
		rec("E002", "鈴木", "開発部", "2024-11-02", "", "18:00", 60, 3),
	}

	m := Monthly(records)
	// Only the first record contributes hours and a working day, but
	// overtime accrues from both.
	if m.TotalWorkingHours != 8.0 {
		t.Errorf("totalWorkingHours = %g, want 8.0", m.TotalWorkingHours)
	}
	if m.TotalOvertimeHours != 5.0 {
		t.Errorf("totalOvertimeHours = %g, want 5.0", m.TotalOvertimeHours)
	}
	if m.AverageWorkingHours != 8.0 {
		t.Errorf("averageWorkingHours = %g, want 8.0 (one working day)", m.AverageWorkingHours)
	}
}

func TestMonthly_EmptyRecordSet(t *testing.T) {
	m := Monthly(nil)
	if m.TotalWorkingHours != 0 || m.AverageWorkingHours != 0 || m.AverageOvertimeHours != 0 {
		t.Errorf("empty set should be all zeros: %+v", m)
	}
}

func TestWorkingHours_NeverNegative(t *testing.T) {
	// Check-out before check-in with a long break: raw difference is
	// deeply negative and must clamp to zero.
	hours, ok := workingHours(rec("E001", "山田", "開発部", "2024-11-01", "18:00", "09:00", 120, 0))
	if !ok {
		t.Fatal("expected parseable times")
	}
	if hours != 0 {
		t.Errorf("hours = %g, want 0", hours)
	}
}

func TestByDepartment_SortedByTotalOvertimeDescending(t *testing.T) {
	records := []models.AttendanceRecord{
		rec("E001", "山田", "開発部", "2024-11-01", "09:00", "18:00", 60, 10),
		rec("E002", "鈴木", "営業部", "2024-11-01", "09:00", "18:00", 60, 30),
		rec("E003", "佐藤", "開発部", "2024-11-01", "09:00", "18:00", 60, 5),
	}

	depts := ByDepartment(records)
	if len(depts) != 2 {
		t.Fatalf("got %d departments, want 2", len(depts))
	}
	if depts[0].Department != "営業部" || depts[1].Department != "開発部" {
		t.Errorf("unexpected order: %+v", depts)
	}
	if depts[1].TotalOvertimeHours != 15.0 {
		t.Errorf("開発部 total = %g, want 15.0", depts[1].TotalOvertimeHours)
	}
	if depts[1].EmployeeCount != 2 {
		t.Errorf("開発部 employees = %d, want 2", depts[1].EmployeeCount)
	}
	if depts[1].AverageOvertimeHours != 7.5 {
		t.Errorf("開発部 average = %g, want 7.5", depts[1].AverageOvertimeHours)
	}
}

// Conservation: department totals must account for every record's
// overtime, no more, no less.
func TestByDepartment_OvertimeConservation(t *testing.T) {
	records := []models.AttendanceRecord{
		rec("E001", "山田", "開発部", "2024-11-01", "09:00", "18:00", 60, 12.3),
		rec("E002", "鈴木", "営業部", "2024-11-01", "", "", 0, 4.2),
		rec("E003", "佐藤", "総務部", "2024-11-02", "10:00", "19:00", 45, 0),
		rec("E004", "田中", "営業部", "2024-11-02", "09:00", "18:00", 60, 8.8),
	}

	var recordTotal float64
	for _, r := range records {
		recordTotal += r.OvertimeHours
	}

	var deptTotal float64
	for _, d := range ByDepartment(records) {
		deptTotal += d.TotalOvertimeHours
	}

	if math.Abs(deptTotal-recordTotal) > 0.2 {
		t.Errorf("department totals %g diverge from record total %g", deptTotal, recordTotal)
	}
}

func TestByEmployee_FirstSeenIdentityAndAccumulation(t *testing.T) {
	records := []models.AttendanceRecord{
		rec("E001", "山田", "開発部", "2024-11-01", "09:00", "18:00", 60, 1),
		rec("E001", "山田太郎", "営業部", "2024-11-02", "09:00", "18:00", 60, 2),
		rec("E001", "山田", "開発部", "2024-11-03", "", "18:00", 0, 1),
	}

	emps := ByEmployee(records)
	if len(emps) != 1 {
		t.Fatalf("got %d employees, want 1", len(emps))
	}
	e := emps[0]
	if e.EmployeeName != "山田" || e.Department != "開発部" {
		t.Errorf("identity should be first-seen: %+v", e)
	}
	if e.WorkingDays != 2 {
		t.Errorf("workingDays = %d, want 2 (missing check-in day excluded)", e.WorkingDays)
	}
	if e.TotalWorkingHours != 16.0 {
		t.Errorf("totalWorkingHours = %g, want 16.0", e.TotalWorkingHours)
	}
	if e.TotalOvertimeHours != 4.0 {
		t.Errorf("totalOvertimeHours = %g, want 4.0 (accrues unconditionally)", e.TotalOvertimeHours)
	}
}

func TestByDay_SortedAscendingWithDistinctEmployees(t *testing.T) {
	records := []models.AttendanceRecord{
		rec("E001", "山田", "開発部", "2024-11-02", "09:00", "18:00", 60, 2),
		rec("E002", "鈴木", "営業部", "2024-11-01", "09:00", "18:00", 60, 1),
		rec("E001", "山田", "開発部", "2024-11-02", "09:00", "18:00", 60, 3),
	}

	days := ByDay(records)
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	if days[0].Date != "2024-11-01" || days[1].Date != "2024-11-02" {
		t.Errorf("days out of order: %+v", days)
	}
	if days[1].TotalOvertimeHours != 5.0 {
		t.Errorf("2024-11-02 overtime = %g, want 5.0", days[1].TotalOvertimeHours)
	}
	if days[1].EmployeeCount != 1 {
		t.Errorf("2024-11-02 employees = %d, want 1 (same id twice)", days[1].EmployeeCount)
	}
}

func TestRound1(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{8.04, 8.0},
		{8.05, 8.1},
		{7.999, 8.0},
		{0, 0},
	}
	for _, tc := range cases {
		if got := round1(tc.in); got != tc.want {
			t.Errorf("round1(%g) = %g, want %g", tc.in, got, tc.want)
		}
	}
}
