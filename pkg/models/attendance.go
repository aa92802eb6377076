// Package models defines the data types shared across the attendance
// analysis pipeline.
package models

// AttendanceRecord is one normalized row of attendance data. Records are
// built once by the parser and never mutated afterwards; nothing survives
// across requests.
type AttendanceRecord struct {
	EmployeeID    string  `json:"employeeId"`
	EmployeeName  string  `json:"employeeName"`
	Department    string  `json:"department"`
	Date          string  `json:"date"`
	CheckIn       string  `json:"checkIn"`  // "HH:MM" or ""
	CheckOut      string  `json:"checkOut"` // "HH:MM" or ""
	BreakMinutes  float64 `json:"breakMinutes"`
	OvertimeHours float64 `json:"overtimeHours"`

	// RowNumber is the 1-based spreadsheet row this record came from.
	// Findings reference it so that users can locate the cell even when
	// the header row sits deep in the sheet.
	RowNumber int `json:"-"`
}

// ErrorType classifies a validation finding.
type ErrorType string

const (
	ErrorTypeMissingData   ErrorType = "missing_data"
	ErrorTypeLogicError    ErrorType = "logic_error"
	ErrorTypeAbnormalValue ErrorType = "abnormal_value"
)

// ValidationFinding describes one data-quality problem in one record.
// Findings come from the local validator and from the LLM collaborator;
// two findings are duplicates when (RowNumber, Column) match.
type ValidationFinding struct {
	RowNumber    int       `json:"rowNumber"`
	Column       string    `json:"column"`
	ErrorType    ErrorType `json:"errorType"`
	Description  string    `json:"description"`
	SuggestedFix string    `json:"suggestedFix"`
}

// MonthlySummary aggregates the whole record set. Hour figures are rounded
// to one decimal.
type MonthlySummary struct {
	TotalWorkingHours    float64 `json:"totalWorkingHours"`
	TotalOvertimeHours   float64 `json:"totalOvertimeHours"`
	PaidLeaveUsageRate   float64 `json:"paidLeaveUsageRate"`
	AverageWorkingHours  float64 `json:"averageWorkingHours"`
	AverageOvertimeHours float64 `json:"averageOvertimeHours"`
}

// DepartmentSummary aggregates overtime per raw department string.
type DepartmentSummary struct {
	Department           string  `json:"department"`
	TotalOvertimeHours   float64 `json:"totalOvertimeHours"`
	AverageOvertimeHours float64 `json:"averageOvertimeHours"`
	EmployeeCount        int     `json:"employeeCount"`
}

// EmployeeSummary aggregates hours per employee ID, carrying the
// first-seen name and department for that ID.
type EmployeeSummary struct {
	EmployeeID         string  `json:"employeeId"`
	EmployeeName       string  `json:"employeeName"`
	Department         string  `json:"department"`
	TotalWorkingHours  float64 `json:"totalWorkingHours"`
	TotalOvertimeHours float64 `json:"totalOvertimeHours"`
	WorkingDays        int     `json:"workingDays"`
}

// DailySummary aggregates overtime per raw date string.
type DailySummary struct {
	Date               string  `json:"date"`
	TotalOvertimeHours float64 `json:"totalOvertimeHours"`
	EmployeeCount      int     `json:"employeeCount"`
}

// AnalysisResult is the full payload returned to the caller.
type AnalysisResult struct {
	Errors              []ValidationFinding `json:"errors"`
	MonthlySummary      MonthlySummary      `json:"monthlySummary"`
	DepartmentSummaries []DepartmentSummary `json:"departmentSummaries"`
	EmployeeSummaries   []EmployeeSummary   `json:"employeeSummaries"`
	DailySummaries      []DailySummary      `json:"dailySummaries"`
	AIReport            string              `json:"aiReport"`
}
