// Package services wires the parsing, validation, aggregation, and LLM
// enrichment steps into the analysis pipeline behind a single interface.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/kintai-works/kintai-engine/pkg/analysis"
	"github.com/kintai-works/kintai-engine/pkg/llm"
	"github.com/kintai-works/kintai-engine/pkg/models"
	"github.com/kintai-works/kintai-engine/pkg/parser"
	"github.com/kintai-works/kintai-engine/pkg/prompts"
)

// ErrNoRecords indicates the uploaded workbook produced no attendance
// records: either no header row was found or no data rows followed it.
var ErrNoRecords = errors.New("no attendance records found")

// reportFallback is returned as the report text whenever report generation
// is unavailable or fails. Aggregation results are unaffected.
const reportFallback = "月次レポートの生成に失敗しました。データ集計は正常に完了しています。"

// AnalysisService runs the full attendance analysis over an uploaded
// workbook.
type AnalysisService interface {
	// Analyze parses, validates, and aggregates the workbook, enriches
	// the result with LLM findings and a prose report when a client is
	// configured, and returns the assembled payload.
	Analyze(ctx context.Context, file []byte) (*models.AnalysisResult, error)
}

type analysisService struct {
	parser  *parser.Parser
	client  llm.Client // nil when no collaborator is configured
	timeout time.Duration
	logger  *zap.Logger
}

// NewAnalysisService creates an AnalysisService. client may be nil, in
// which case the pipeline runs with local findings only and the fallback
// report text. timeout bounds each collaborator call separately.
func NewAnalysisService(p *parser.Parser, client llm.Client, timeout time.Duration, logger *zap.Logger) AnalysisService {
	return &analysisService{
		parser:  p,
		client:  client,
		timeout: timeout,
		logger:  logger.Named("analysis"),
	}
}

var _ AnalysisService = (*analysisService)(nil)

func (s *analysisService) Analyze(ctx context.Context, file []byte) (*models.AnalysisResult, error) {
	records, err := s.parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse workbook: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	localFindings := analysis.Validate(records)
	csvData := analysis.RenderCSV(records)

	// The collaborator supplements the local findings; it never replaces
	// them and its failure never fails the request.
	externalFindings := s.detectFindings(ctx, csvData)
	merged := MergeFindings(localFindings, externalFindings)

	result := &models.AnalysisResult{
		Errors:              merged,
		MonthlySummary:      analysis.Monthly(records),
		DepartmentSummaries: analysis.ByDepartment(records),
		EmployeeSummaries:   analysis.ByEmployee(records),
		DailySummaries:      analysis.ByDay(records),
	}

	// The report prompt includes the merged findings, so generation runs
	// after detection rather than alongside it.
	result.AIReport = s.generateReport(ctx, csvData, result.MonthlySummary, result.DepartmentSummaries, merged)

	return result, nil
}

// detectFindings asks the collaborator for supplementary findings. Every
// failure path degrades to an empty list.
func (s *analysisService) detectFindings(ctx context.Context, csvData string) []models.ValidationFinding {
	if s.client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.client.Complete(ctx, prompts.BuildErrorDetectionPrompt(csvData))
	if err != nil {
		s.logger.Warn("error detection call failed", zap.Error(err))
		return nil
	}

	findings, err := decodeFindings(text)
	if err != nil {
		s.logger.Warn("error detection response unusable",
			zap.Int("response_len", len(text)),
			zap.Error(err))
		return nil
	}
	return findings
}

// generateReport asks the collaborator for the monthly prose report,
// substituting the fixed fallback text on any failure.
func (s *analysisService) generateReport(
	ctx context.Context,
	csvData string,
	monthly models.MonthlySummary,
	departments []models.DepartmentSummary,
	findings []models.ValidationFinding,
) string {
	if s.client == nil {
		return reportFallback
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := prompts.BuildMonthlyReportPrompt(csvData, monthly, departments, findings)
	text, err := s.client.Complete(ctx, prompt)
	if err != nil {
		s.logger.Warn("report generation call failed", zap.Error(err))
		return reportFallback
	}
	if text == "" {
		return reportFallback
	}
	return text
}

// MergeFindings concatenates local and external findings, dropping later
// duplicates. Two findings are duplicates when row number and column
// match; the first occurrence wins, so local findings take precedence.
func MergeFindings(local, external []models.ValidationFinding) []models.ValidationFinding {
	type key struct {
		row    int
		column string
	}

	merged := make([]models.ValidationFinding, 0, len(local)+len(external))
	seen := make(map[key]bool, len(local)+len(external))

	for _, f := range append(append([]models.ValidationFinding{}, local...), external...) {
		k := key{row: f.RowNumber, column: f.Column}
		if seen[k] {
			continue
		}
		seen[k] = true
		merged = append(merged, f)
	}
	return merged
}

// rawFinding mirrors ValidationFinding with lenient field types; models
// sometimes return row numbers as strings.
type rawFinding struct {
	RowNumber    json.RawMessage `json:"rowNumber"`
	Column       string          `json:"column"`
	ErrorType    string          `json:"errorType"`
	Description  string          `json:"description"`
	SuggestedFix string          `json:"suggestedFix"`
}

// decodeFindings parses the collaborator's reply into findings, tolerating
// prose around the JSON array and string-typed row numbers.
func decodeFindings(text string) ([]models.ValidationFinding, error) {
	raw, err := llm.ParseJSONResponse[[]rawFinding](text)
	if err != nil {
		return nil, err
	}

	findings := make([]models.ValidationFinding, 0, len(raw))
	for _, r := range raw {
		findings = append(findings, models.ValidationFinding{
			RowNumber:    flexibleInt(r.RowNumber),
			Column:       r.Column,
			ErrorType:    models.ErrorType(r.ErrorType),
			Description:  r.Description,
			SuggestedFix: r.SuggestedFix,
		})
	}
	return findings, nil
}

// flexibleInt reads a JSON value that should be an integer but may arrive
// as a float or a quoted string. Unusable values become zero.
func flexibleInt(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}

	return 0
}
