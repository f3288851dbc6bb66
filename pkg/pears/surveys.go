package pears

import (
	"fmt"

	"github.com/inepdata/surveysweep/internal/schema"
	"github.com/inepdata/surveysweep/internal/xlsx"
	"github.com/inepdata/surveysweep/pkg/period"
)

const responseDataSheet = "Response Data"

// SurveyWorkbookName returns the period-tagged filename of the Coalition
// Survey responses export, e.g.
// "Responses By Survey - Coalition Survey - Q2.xlsx".
func SurveyWorkbookName(p period.Period) string {
	return fmt.Sprintf("Responses By Survey - Coalition Survey - %s.xlsx", p.Quarter)
}

// LoadSurveys reads the quarter's Coalition Survey responses. Only rows
// whose quarter question matches the active survey label are kept, test
// coalitions are dropped, and the free-text coalition id is normalized to
// digits only.
func LoadSurveys(path string, p period.Period) ([]SurveyResponse, error) {
	sheet, err := xlsx.ReadSheet(path, responseDataSheet)
	if err != nil {
		return nil, err
	}
	sheet.RenameHeaders(schema.Columns("survey"))

	var responses []SurveyResponse
	for _, row := range sheet.Rows() {
		if row.Get("survey_quarter") != p.SurveyLabel {
			continue
		}
		name := row.Get("coalition_name")
		if IsTestName(name) {
			continue
		}

		responses = append(responses, SurveyResponse{
			ResponseID:    row.Get("response_id"),
			CoalitionID:   NormalizeID(row.Get("coalition_id")),
			ProgramID:     row.Get("program_id"),
			ProgramName:   row.Get("program_name"),
			ReportedBy:    row.Get("reported_by_email"),
			CoalitionName: name,
			Quarter:       row.Get("survey_quarter"),
		})
	}
	return responses, nil
}
