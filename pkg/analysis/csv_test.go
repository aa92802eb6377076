package analysis

import (
	"strings"
	"testing"

	"github.com/kintai-works/kintai-engine/pkg/models"
)

func TestRenderCSV(t *testing.T) {
	records := []models.AttendanceRecord{
		rec("E001", "山田", "開発部", "2024-11-01", "09:00", "18:00", 60, 0),
		rec("E002", "鈴木", "営業部", "2024-11-01", "", "19:30", 45, 1.5),
	}

	got := RenderCSV(records)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "社員ID,氏名,部署,日付,出勤時刻,退勤時刻,休憩分,残業時間" {
		t.Errorf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "E001,山田,開発部,2024-11-01,09:00,18:00,60,0" {
		t.Errorf("unexpected first row: %q", lines[1])
	}
	if lines[2] != "E002,鈴木,営業部,2024-11-01,,19:30,45,1.5" {
		t.Errorf("unexpected second row: %q", lines[2])
	}
}

func TestRenderCSV_EmptyRecordSetIsHeaderOnly(t *testing.T) {
	if got := RenderCSV(nil); got != "社員ID,氏名,部署,日付,出勤時刻,退勤時刻,休憩分,残業時間" {
		t.Errorf("unexpected output: %q", got)
	}
}
