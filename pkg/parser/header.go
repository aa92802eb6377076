package parser

import "strings"

// field identifies one of the eight canonical attendance columns.
type field int

const (
	fieldID field = iota
	fieldName
	fieldDept
	fieldDate
	fieldCheckIn
	fieldCheckOut
	fieldBreak
	fieldOvertime
	fieldCount
)

// Header labels vary by author and language, so resolution runs in two
// passes: exact equality against the specific labels first, substring
// containment against looser keywords second. A full exact match for one
// field always outranks a partial match for a competing field. The `date`
// field has no partial keywords; a bare fragment like "日" matches far too
// much to be safe.
var exactKeywords = [fieldCount][]string{
	fieldID:       {"社員ID", "社員番号", "employeeId"},
	fieldName:     {"氏名", "employeeName"},
	fieldDept:     {"部署", "部門", "department"},
	fieldDate:     {"日付", "date"},
	fieldCheckIn:  {"出勤時刻", "checkIn"},
	fieldCheckOut: {"退勤時刻", "checkOut"},
	fieldBreak:    {"休憩分", "break"},
	fieldOvertime: {"残業時間", "overtime"},
}

var partialKeywords = [fieldCount][]string{
	fieldID:       {"ID", "番号"},
	fieldName:     {"名前", "氏", "名"},
	fieldDept:     {"所属"},
	fieldDate:     {},
	fieldCheckIn:  {"出勤", "始業"},
	fieldCheckOut: {"退勤", "終業"},
	fieldBreak:    {"休憩"},
	fieldOvertime: {"残業"},
}

const (
	// headerScanLimit bounds how deep into the sheet a header row is looked for.
	headerScanLimit = 20
	// minHeaderMatches is how many canonical columns a row must resolve
	// before it is accepted as the header.
	minHeaderMatches = 4
)

// ColumnMapping maps each canonical field to its column index in the
// sheet, -1 when the column was not found. Built once by ResolveHeader
// and passed around by value afterwards.
type ColumnMapping struct {
	ID       int
	Name     int
	Dept     int
	Date     int
	CheckIn  int
	CheckOut int
	Break    int
	Overtime int
}

// Resolved returns how many of the eight fields have a column.
func (m ColumnMapping) Resolved() int {
	n := 0
	for _, idx := range [...]int{m.ID, m.Name, m.Dept, m.Date, m.CheckIn, m.CheckOut, m.Break, m.Overtime} {
		if idx >= 0 {
			n++
		}
	}
	return n
}

// Header is the result of a successful header resolution.
type Header struct {
	RowIndex int // 0-based index into the grid
	Mapping  ColumnMapping
}

// ResolveHeader scans the first rows of the grid for the row that best
// looks like a header. The first row resolving at least minHeaderMatches
// fields wins; scanning stops there. Returns false when no row qualifies.
func ResolveHeader(rows [][]string) (Header, bool) {
	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}

	for i := 0; i < limit; i++ {
		if mapping, n := matchHeaderRow(rows[i]); n >= minHeaderMatches {
			return Header{RowIndex: i, Mapping: mapping}, true
		}
	}
	return Header{}, false
}

// matchHeaderRow maps the cells of one candidate row to canonical fields
// and reports how many fields were resolved. Within a pass the first
// unassigned field in canonical order claims a cell, and each cell claims
// at most one field.
func matchHeaderRow(row []string) (ColumnMapping, int) {
	var assigned [fieldCount]int
	for f := range assigned {
		assigned[f] = -1
	}
	claimed := make(map[int]bool, fieldCount)

	// Pass 1: exact label equality.
	for col, cell := range row {
		text := strings.TrimSpace(cell)
		if text == "" {
			continue
		}
		for f := field(0); f < fieldCount; f++ {
			if assigned[f] < 0 && matchesExact(text, exactKeywords[f]) {
				assigned[f] = col
				claimed[col] = true
				break
			}
		}
	}

	// Pass 2: substring match for whatever is still missing, skipping
	// cells already claimed by an exact match.
	for col, cell := range row {
		text := strings.TrimSpace(cell)
		if text == "" || claimed[col] {
			continue
		}
		for f := field(0); f < fieldCount; f++ {
			if assigned[f] < 0 && matchesPartial(text, partialKeywords[f]) {
				assigned[f] = col
				claimed[col] = true
				break
			}
		}
	}

	mapping := ColumnMapping{
		ID:       assigned[fieldID],
		Name:     assigned[fieldName],
		Dept:     assigned[fieldDept],
		Date:     assigned[fieldDate],
		CheckIn:  assigned[fieldCheckIn],
		CheckOut: assigned[fieldCheckOut],
		Break:    assigned[fieldBreak],
		Overtime: assigned[fieldOvertime],
	}
	return mapping, mapping.Resolved()
}

func matchesExact(text string, keywords []string) bool {
	clean := strings.ToLower(strings.TrimSpace(text))
	for _, k := range keywords {
		if clean == strings.ToLower(k) {
			return true
		}
	}
	return false
}

func matchesPartial(text string, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}
	clean := strings.ToLower(strings.TrimSpace(text))
	for _, k := range keywords {
		if strings.Contains(clean, strings.ToLower(k)) {
			return true
		}
	}
	return false
}
