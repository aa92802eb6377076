package analysis

import (
	"strings"
	"testing"

	"github.com/kintai-works/kintai-engine/pkg/models"
)

func record(row int, checkIn, checkOut string, overtime float64) models.AttendanceRecord {
	return models.AttendanceRecord{
		EmployeeID:    "E001",
		EmployeeName:  "山田",
		Department:    "開発部",
		Date:          "2024-11-01",
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		BreakMinutes:  60,
		OvertimeHours: overtime,
		RowNumber:     row,
	}
}

func TestValidate_CleanRecordHasNoFindings(t *testing.T) {
	findings := Validate([]models.AttendanceRecord{record(2, "09:00", "18:00", 0)})
	if len(findings) != 0 {
		t.Fatalf("got %d findings, want 0: %+v", len(findings), findings)
	}
}

func TestValidate_MissingCheckIn(t *testing.T) {
	findings := Validate([]models.AttendanceRecord{record(5, "", "18:00", 0)})
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	f := findings[0]
	if f.ErrorType != models.ErrorTypeMissingData {
		t.Errorf("errorType = %s, want missing_data", f.ErrorType)
	}
	if f.Column != "出勤時刻" {
		t.Errorf("column = %q, want 出勤時刻", f.Column)
	}
	if f.RowNumber != 5 {
		t.Errorf("rowNumber = %d, want 5 (the record's physical row)", f.RowNumber)
	}
}

func TestValidate_MissingCheckOut(t *testing.T) {
	findings := Validate([]models.AttendanceRecord{record(3, "09:00", "", 0)})
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	if findings[0].Column != "退勤時刻" || findings[0].ErrorType != models.ErrorTypeMissingData {
		t.Errorf("unexpected finding: %+v", findings[0])
	}
}

func TestValidate_BothTimesMissingYieldsTwoFindings(t *testing.T) {
	findings := Validate([]models.AttendanceRecord{record(2, "", "", 0)})
	if len(findings) != 2 {
		t.Fatalf("got %d findings, want 2", len(findings))
	}
}

func TestValidate_CheckOutBeforeCheckIn(t *testing.T) {
	findings := Validate([]models.AttendanceRecord{record(4, "18:00", "09:00", 0)})
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	f := findings[0]
	if f.ErrorType != models.ErrorTypeLogicError {
		t.Errorf("errorType = %s, want logic_error", f.ErrorType)
	}
	if !strings.Contains(f.Description, "18:00") || !strings.Contains(f.Description, "09:00") {
		t.Errorf("description should name both times: %q", f.Description)
	}
}

func TestValidate_UnparseableTimeReportedNotCompared(t *testing.T) {
	// A verbatim pass-through value from normalization must produce its
	// own finding and never a bogus earlier/later comparison.
	findings := Validate([]models.AttendanceRecord{record(6, "休暇", "18:00", 0)})
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1: %+v", len(findings), findings)
	}
	f := findings[0]
	if f.ErrorType != models.ErrorTypeAbnormalValue {
		t.Errorf("errorType = %s, want abnormal_value", f.ErrorType)
	}
	if !strings.Contains(f.Description, "休暇") {
		t.Errorf("description should include the raw value: %q", f.Description)
	}
}

func TestValidate_OvertimeThresholdIsStrict(t *testing.T) {
	cases := []struct {
		overtime float64
		want     int
	}{
		{150, 1},
		{100.5, 1},
		{100, 0},
		{90, 0},
	}
	for _, tc := range cases {
		findings := Validate([]models.AttendanceRecord{record(2, "09:00", "18:00", tc.overtime)})
		if len(findings) != tc.want {
			t.Errorf("overtime %g: got %d findings, want %d", tc.overtime, len(findings), tc.want)
		}
		if tc.want == 1 && !strings.Contains(findings[0].Description, "150") && tc.overtime == 150 {
			t.Errorf("description should include the hour value: %q", findings[0].Description)
		}
	}
}

func TestValidate_FindingsPreserveInputOrder(t *testing.T) {
	findings := Validate([]models.AttendanceRecord{
		record(2, "", "18:00", 0),
		record(3, "09:00", "18:00", 120),
		record(4, "18:00", "09:00", 0),
	})
	if len(findings) != 3 {
		t.Fatalf("got %d findings, want 3", len(findings))
	}
	if findings[0].RowNumber != 2 || findings[1].RowNumber != 3 || findings[2].RowNumber != 4 {
		t.Errorf("findings out of order: %+v", findings)
	}
}
