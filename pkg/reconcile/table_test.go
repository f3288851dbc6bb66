package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inepdata/surveysweep/pkg/pears"
	"github.com/inepdata/surveysweep/pkg/reconcile"
)

func TestCoalitionsTable(t *testing.T) {
	corrections := []reconcile.CoaCorrection{
		{
			CoalitionRecord: pears.CoalitionRecord{
				ID: "501", Name: "Champaign Wellness Coalition", Unit: "14",
				Depth: pears.DepthCoalition, ReportedBy: "jdoe@illinois.edu",
			},
			Update: reconcile.CoalitionUpdateMessage,
		},
	}

	tbl := reconcile.CoalitionsTable(corrections)
	require.Len(t, tbl.Rows, 1)
	assert.False(t, tbl.Empty())
	assert.Equal(t, "UPDATES", tbl.Headers[len(tbl.Headers)-1])
	assert.Equal(t,
		[]string{"501", "Champaign Wellness Coalition", "jdoe@illinois.edu", "14", "Coalition", "No", reconcile.CoalitionUpdateMessage},
		tbl.Rows[0])

	email := reconcile.CoalitionsEmailTable(corrections)
	assert.NotContains(t, email.Headers, "reported_by_email")
	assert.NotContains(t, email.Headers, "unit")
}

func TestSurveysTable(t *testing.T) {
	corrections := []reconcile.SurveyCorrection{
		{
			SurveyResponse: pears.SurveyResponse{
				ResponseID: "r-1", CoalitionID: "", ProgramID: "9001",
				ProgramName: "Mystery Survey", ReportedBy: "who@illinois.edu",
				CoalitionName: "Mystery Coalition", Quarter: "Quarter 2 (January-March)",
			},
			Update: reconcile.SurveyUpdateMessage,
		},
	}

	tbl := reconcile.SurveysTable(corrections)
	assert.Equal(t, "program_id", tbl.Headers[0], "report table indexed by program_id")
	assert.Equal(t, "", tbl.Rows[0][4], "malformed id renders as blank, not a sentinel")

	email := reconcile.SurveysEmailTable(corrections)
	assert.NotContains(t, email.Headers, "response_id")
	assert.NotContains(t, email.Headers, "reported_by_email")
}

func TestSummaryTable(t *testing.T) {
	tbl := reconcile.SummaryTable([]reconcile.SummaryRow{
		{Module: "Coalitions", Update: "UPDATES", Entries: 3, Notes: "fix these"},
	})
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []string{"Coalitions", "UPDATES", "3", "fix these"}, tbl.Rows[0])
}

func TestEmptyTable(t *testing.T) {
	assert.True(t, reconcile.CoalitionsTable(nil).Empty())
}
