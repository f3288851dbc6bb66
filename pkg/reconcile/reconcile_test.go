package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inepdata/surveysweep/pkg/pears"
	"github.com/inepdata/surveysweep/pkg/reconcile"
	"github.com/inepdata/surveysweep/pkg/refdata"
)

func testEngine() *reconcile.Engine {
	counties := refdata.NewUnitCounties(map[string]string{
		"Champaign":   "14",
		"Ford":        "14",
		"Rock Island": "7",
	})
	notes := refdata.UpdateNotes{
		{Module: "Coalitions", Update: "UPDATES"}: "Submit the missing Coalition Surveys.",
	}
	return reconcile.New(counties, notes)
}

func coalition(id, name, unit string, depth pears.RelationshipDepth, hiatus bool) pears.CoalitionRecord {
	return pears.CoalitionRecord{
		ID:         id,
		Name:       name,
		Unit:       unit,
		Depth:      depth,
		ReportedBy: "owner-" + id + "@illinois.edu",
		OnHiatus:   hiatus,
	}
}

func survey(id, programID string) pears.SurveyResponse {
	return pears.SurveyResponse{
		ResponseID:    "r-" + programID,
		CoalitionID:   id,
		ProgramID:     programID,
		ProgramName:   "Coalition Survey " + programID,
		ReportedBy:    "reporter-" + programID + "@illinois.edu",
		CoalitionName: "Coalition " + id,
		Quarter:       "Quarter 2 (January-March)",
	}
}

func TestNormalizeUnit(t *testing.T) {
	e := testEngine()

	tests := []struct {
		raw  string
		want string
	}{
		{"Champaign (County)", "14"},
		{"Unit 14", "14"},
		{"14", "14"},
		{"Rock Island (District)", "7"},
		{"Statewide", "Statewide"}, // neither unit nor county, passes through
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, e.NormalizeUnit(tt.raw))
		})
	}
}

func TestReconcileCoalitionPass(t *testing.T) {
	e := testEngine()

	coalitions := []pears.CoalitionRecord{
		coalition("501", "Champaign Wellness Coalition", "Champaign (County)", pears.DepthCoalition, false),
		coalition("502", "Surveyed Coalition", "14", pears.DepthCollaboration, false),
		coalition("503", "Hiatus Coalition", "7", pears.DepthCoordination, true),
		coalition("504", "Networking Coalition", "7", pears.RelationshipDepth("Networking"), false),
		coalition("505", "TEST Coalition", "7", pears.DepthCoalition, false),
	}
	surveys := []pears.SurveyResponse{survey("502", "9002")}

	result := e.Reconcile(coalitions, surveys)

	// Only 501: surveyed, on-hiatus, shallow, and test coalitions all pass.
	require.Len(t, result.Coalitions, 1)
	c := result.Coalitions[0]
	assert.Equal(t, "501", c.ID)
	assert.Equal(t, "14", c.Unit, "county label canonicalized to unit code")
	assert.Equal(t, reconcile.CoalitionUpdateMessage, c.Update)
}

func TestReconcileSurveyPass(t *testing.T) {
	e := testEngine()

	coalitions := []pears.CoalitionRecord{
		coalition("501", "Champaign Wellness Coalition", "14", pears.DepthCoalition, false),
		coalition("505", "TEST Coalition", "7", pears.DepthCoalition, false),
	}
	surveys := []pears.SurveyResponse{
		survey("501", "9001"), // matches: no correction
		survey("999", "9002"), // unknown id
		survey("", "9003"),    // malformed id never matches
		survey("505", "9004"), // test coalitions are not active ids
	}

	result := e.Reconcile(coalitions, surveys)

	require.Len(t, result.Surveys, 3)
	var ids []string
	for _, s := range result.Surveys {
		ids = append(ids, s.ProgramID)
		assert.Equal(t, reconcile.SurveyUpdateMessage, s.Update)
	}
	assert.Equal(t, []string{"9002", "9003", "9004"}, ids)
}

func TestReconcileSummary(t *testing.T) {
	e := testEngine()

	coalitions := []pears.CoalitionRecord{
		coalition("501", "Champaign Wellness Coalition", "14", pears.DepthCoalition, false),
	}
	result := e.Reconcile(coalitions, []pears.SurveyResponse{survey("999", "9002")})

	require.Len(t, result.Summary, 2)

	coa := result.Summary[0]
	assert.Equal(t, reconcile.CoalitionsModule, coa.Module)
	assert.Equal(t, reconcile.CoalitionUpdateColumn, coa.Update)
	assert.Equal(t, 1, coa.Entries)
	assert.Equal(t, "Submit the missing Coalition Surveys.", coa.Notes)

	pa := result.Summary[1]
	assert.Equal(t, reconcile.ProgramActivitiesModule, pa.Module)
	assert.Equal(t, 1, pa.Entries)
	assert.Empty(t, pa.Notes, "no catalog entry for this module")
}

func TestReconcileEmptyInputs(t *testing.T) {
	e := testEngine()

	result := e.Reconcile(nil, nil)
	assert.Empty(t, result.Coalitions)
	assert.Empty(t, result.Surveys)
	require.Len(t, result.Summary, 2)
	assert.Equal(t, 0, result.Summary[0].Entries)
	assert.Equal(t, 0, result.Summary[1].Entries)
}
