package reconcile

import "strconv"

// Table is the render-facing view of a corrections table: ordered headers
// and string cells, consumed by the workbook writer, the notification
// bodies, and the console summary alike. Null-ish values are already ""
// here, so empty cells render as blanks, not "nil".
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// Empty reports whether the table has no data rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// CoalitionsTable renders coalition corrections for the report workbook.
func CoalitionsTable(corrections []CoaCorrection) Table {
	t := Table{
		Name: CoalitionsModule,
		Headers: []string{"coalition_id", "coalition_name", "reported_by_email",
			"unit", "relationship_depth", "on_hiatus", CoalitionUpdateColumn},
	}
	for _, c := range corrections {
		t.Rows = append(t.Rows, []string{
			c.ID, c.Name, c.ReportedBy, c.Unit, string(c.Depth), yesNo(c.OnHiatus), c.Update,
		})
	}
	return t
}

// CoalitionsEmailTable renders coalition corrections for a notification
// body: routing columns (email, unit) are dropped since the recipient is
// the owner.
func CoalitionsEmailTable(corrections []CoaCorrection) Table {
	t := Table{
		Name:    CoalitionsModule,
		Headers: []string{"coalition_id", "coalition_name", "relationship_depth", "on_hiatus", CoalitionUpdateColumn},
	}
	for _, c := range corrections {
		t.Rows = append(t.Rows, []string{
			c.ID, c.Name, string(c.Depth), yesNo(c.OnHiatus), c.Update,
		})
	}
	return t
}

// SurveysTable renders survey corrections for the report workbook,
// indexed by program_id.
func SurveysTable(corrections []SurveyCorrection) Table {
	t := Table{
		Name: "Coalition Surveys",
		Headers: []string{"program_id", "program_name", "response_id", "reported_by_email",
			"coalition_id", "coalition_name", "survey_quarter", SurveyUpdateColumn},
	}
	for _, s := range corrections {
		t.Rows = append(t.Rows, []string{
			s.ProgramID, s.ProgramName, s.ResponseID, s.ReportedBy,
			s.CoalitionID, s.CoalitionName, s.Quarter, s.Update,
		})
	}
	return t
}

// SurveysEmailTable renders survey corrections for a notification body:
// the response id and routing email are dropped.
func SurveysEmailTable(corrections []SurveyCorrection) Table {
	t := Table{
		Name: "Coalition Surveys",
		Headers: []string{"program_id", "program_name", "coalition_id",
			"coalition_name", "survey_quarter", SurveyUpdateColumn},
	}
	for _, s := range corrections {
		t.Rows = append(t.Rows, []string{
			s.ProgramID, s.ProgramName, s.CoalitionID, s.CoalitionName, s.Quarter, s.Update,
		})
	}
	return t
}

// SummaryTable renders the corrections summary.
func SummaryTable(summary []SummaryRow) Table {
	t := Table{
		Name:    "Corrections Summary",
		Headers: []string{"Module", "Update", "# of Entries", "Notes"},
	}
	for _, row := range summary {
		t.Rows = append(t.Rows, []string{
			row.Module, row.Update, strconv.Itoa(row.Entries), row.Notes,
		})
	}
	return t
}
