// Package prompts builds the prompts sent to the LLM collaborator. The
// prompt text is Japanese because the findings and reports it produces are
// user-facing in Japanese.
package prompts

import (
	"fmt"
	"strings"

	"github.com/kintai-works/kintai-engine/pkg/models"
)

// BuildErrorDetectionPrompt asks the model to review the attendance CSV
// for errors, anomalies, and legal-compliance risks, answering as a bare
// JSON array of findings.
func BuildErrorDetectionPrompt(csvData string) string {
	var b strings.Builder

	b.WriteString("あなたは人事労務の専門家です。以下の勤怠データCSVを分析し、エラー・異常値・法令違反リスクを検出してください。\n\n")
	b.WriteString("勤怠データCSV:\n")
	b.WriteString(csvData)
	b.WriteString("\n\n以下の観点でチェックし、JSON形式で出力してください：\n")
	b.WriteString("1. 欠損データ（出勤時刻・退勤時刻が空白）\n")
	b.WriteString("2. 論理矛盾（退勤時刻が出勤時刻より早い）\n")
	b.WriteString("3. 異常値（残業時間が80時間超、100時間超の過労死ライン）\n")
	b.WriteString("4. その他の異常なパターン\n\n")
	b.WriteString("出力形式（JSON配列のみ）:\n")
	b.WriteString(`[
  {
    "rowNumber": 3,
    "column": "出勤時刻",
    "errorType": "missing_data",
    "description": "出勤時刻が入力されていません",
    "suggestedFix": "出勤時刻を入力してください"
  }
]`)
	b.WriteString("\n\nJSON配列のみを出力してください。説明文は不要です。")

	return b.String()
}

// BuildMonthlyReportPrompt asks the model for a management-facing monthly
// report over the computed summaries and the merged findings.
func BuildMonthlyReportPrompt(
	csvData string,
	monthly models.MonthlySummary,
	departments []models.DepartmentSummary,
	findings []models.ValidationFinding,
) string {
	var b strings.Builder

	b.WriteString("あなたは人事労務の専門家です。以下の勤怠データを分析し、経営層向けの月次レポートを日本語で作成してください。\n\n")

	b.WriteString("【月次サマリー】\n")
	fmt.Fprintf(&b, "- 総労働時間: %g時間\n", monthly.TotalWorkingHours)
	fmt.Fprintf(&b, "- 総残業時間: %g時間\n", monthly.TotalOvertimeHours)
	fmt.Fprintf(&b, "- 平均労働時間: %g時間/日\n", monthly.AverageWorkingHours)
	fmt.Fprintf(&b, "- 平均残業時間: %g時間/日\n", monthly.AverageOvertimeHours)

	b.WriteString("\n【部署別残業時間】\n")
	for _, d := range departments {
		fmt.Fprintf(&b, "- %s: %g時間（平均%g時間/人）\n", d.Department, d.TotalOvertimeHours, d.AverageOvertimeHours)
	}

	b.WriteString("\n【検出されたエラー】\n")
	if len(findings) == 0 {
		b.WriteString("- エラーなし\n")
	}
	for _, f := range findings {
		fmt.Fprintf(&b, "- %s (行%d)\n", f.Description, f.RowNumber)
	}

	b.WriteString("\n以下の構成でレポートを作成してください：\n")
	b.WriteString("1. 今月のハイライト（2-3文）\n")
	b.WriteString("2. 部署別の傾向分析（1-2文）\n")
	b.WriteString("3. 懸念事項と推奨アクション（あれば）\n")
	b.WriteString("4. データ品質について（エラーがあれば言及）\n\n")
	b.WriteString("プロフェッショナルで簡潔な文体で、箇条書きを活用してください。")

	return b.String()
}
