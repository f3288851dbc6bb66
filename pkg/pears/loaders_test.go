package pears_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	pkgerrors "github.com/inepdata/surveysweep/pkg/errors"
	"github.com/inepdata/surveysweep/pkg/pears"
	"github.com/inepdata/surveysweep/pkg/period"
)

func writeSheet(t *testing.T, f *excelize.File, sheet string, rows [][]any) {
	t.Helper()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
}

func writeCoalitionExport(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Coalition Data"))
	writeSheet(t, f, "Coalition Data", [][]any{
		{"coalition_id", "coalition_name", "reported_by_email", "coalition_unit",
			"program_area", "relationship_depth", "created", "modified", "on_hiatus"},
		{"501", "Champaign Wellness Coalition", "jdoe@illinois.edu", "Champaign (County)",
			"SNAP-Ed", "Coalition", "2021-10-01", "2022-01-05", "No"},
		{"502", "Peoria Food Council", "asmith@illinois.edu", "Unit 10",
			"Family Consumer Science", "Coordination", "2021-11-15", "2022-01-02", "Yes"},
		{"503", "4-H Robotics Club", "other@illinois.edu", "7",
			"4-H Youth Development", "Coalition", "2021-09-01", "2021-12-01", "No"},
	})

	_, err := f.NewSheet("Meetings")
	require.NoError(t, err)
	writeSheet(t, f, "Meetings", [][]any{
		{"coalition_id", "start_date"},
		{"501", "2022-02-03"},
		{"501", "2021-11-30"},
		{"502", "not a date"},
	})

	path := filepath.Join(t.TempDir(), "Coalition_Export.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadCoalitions(t *testing.T) {
	path := writeCoalitionExport(t)

	records, err := pears.LoadCoalitions(path)
	require.NoError(t, err)

	// The 4-H record is out of scope.
	require.Len(t, records, 2)

	assert.Equal(t, "501", records[0].ID)
	assert.Equal(t, pears.DepthCoalition, records[0].Depth)
	assert.False(t, records[0].OnHiatus)
	assert.Equal(t, "Champaign (County)", records[0].Unit)

	// Earliest of the two meetings wins.
	assert.Equal(t, time.Date(2021, time.November, 30, 0, 0, 0, 0, time.UTC), records[0].FirstMeeting)

	assert.True(t, records[1].OnHiatus)
	assert.True(t, records[1].FirstMeeting.IsZero())
}

func TestLoadCoalitionsMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	path := filepath.Join(t.TempDir(), "Coalition_Export.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := pears.LoadCoalitions(path)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsDataSource(err))
}

func writeSurveyExport(t *testing.T, label string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Response Data"))
	writeSheet(t, f, "Response Data", [][]any{
		{"Program Activity ID", "Program Name", "Unique PEARS ID of Response", "staff_email",
			"What is the Coalition ID from the PEARS Coalition module that corresponds to this survey?",
			"coalition_name", "For which Quarter are you completing this survey?&nbsp;"},
		{"9001", "Champaign Coalition Survey", "r-1", "jdoe@illinois.edu", "501",
			"Champaign Wellness Coalition", label},
		{"9002", "Peoria Coalition Survey", "r-2", "asmith@illinois.edu", "ID: 502",
			"Peoria Food Council", label},
		{"9003", "Stale Survey", "r-3", "jdoe@illinois.edu", "501",
			"Champaign Wellness Coalition", "Quarter 1 (October-December)"},
		{"9004", "Test Survey", "r-4", "jdoe@illinois.edu", "501",
			"TEST do not use", label},
		{"9005", "Mystery Survey", "r-5", "who@illinois.edu", "unknown",
			"Mystery Coalition", label},
	})

	path := filepath.Join(t.TempDir(), "Responses By Survey - Coalition Survey - Q2.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadSurveys(t *testing.T) {
	p := period.Period{Quarter: "Q2", SurveyLabel: "Quarter 2 (January-March)"}
	path := writeSurveyExport(t, p.SurveyLabel)

	responses, err := pears.LoadSurveys(path, p)
	require.NoError(t, err)

	// Wrong quarter and TEST rows are dropped.
	require.Len(t, responses, 3)

	assert.Equal(t, "501", responses[0].CoalitionID)
	assert.Equal(t, "502", responses[1].CoalitionID) // extracted from "ID: 502"
	assert.Equal(t, "", responses[2].CoalitionID)    // no digit run
	assert.Equal(t, "9001", responses[0].ProgramID)
}

func TestSurveyWorkbookName(t *testing.T) {
	p := period.Period{Quarter: "Q4", SurveyLabel: "Quarter 4 (July-September)"}
	assert.Equal(t, "Responses By Survey - Coalition Survey - Q4.xlsx", pears.SurveyWorkbookName(p))
}
