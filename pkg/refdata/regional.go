package refdata

import (
	"strings"

	"github.com/inepdata/surveysweep/internal/schema"
	"github.com/inepdata/surveysweep/internal/xlsx"
)

// Educator is the regional specialist assigned to one unit.
type Educator struct {
	Name  string // reordered to "First Last"
	Email string
}

// Assignments maps a unit code to its regional educator.
type Assignments map[string]Educator

// LoadAssignments reads the regional-educator sheet of the staff-list
// workbook. Interim titles are stripped, "Last, First" names reordered,
// and duplicate unit rows collapsed (first wins).
func LoadAssignments(path string) (Assignments, error) {
	sheet, err := xlsx.ReadSheet(path, regionalSheet)
	if err != nil {
		return nil, err
	}
	sheet.RenameHeaders(schema.Columns("regional"))

	a := make(Assignments)
	for _, row := range sheet.Rows() {
		unit := row.Get("unit")
		name := strings.ReplaceAll(row.Get("educator"), ", Interim", "")
		email := row.Get("email")
		if unit == "" || name == "" || email == "" {
			continue
		}
		if _, seen := a[unit]; seen {
			continue
		}

		if last, first, ok := strings.Cut(name, ", "); ok {
			name = first + " " + last
		}
		a[unit] = Educator{Name: name, Email: email}
	}
	return a, nil
}

// Lookup returns the educator assigned to a unit.
func (a Assignments) Lookup(unit string) (Educator, bool) {
	e, ok := a[unit]
	return e, ok
}
