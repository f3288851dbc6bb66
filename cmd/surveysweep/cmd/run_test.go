package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inepdata/surveysweep"
	"github.com/inepdata/surveysweep/pkg/notify"
	"github.com/inepdata/surveysweep/pkg/period"
	"github.com/inepdata/surveysweep/pkg/reconcile"
)

func TestPrintRunResult(t *testing.T) {
	result := &surveysweep.RunResult{
		Period: period.Period{Quarter: "Q2", SurveyLabel: "Quarter 2 (January-March)"},
		Summary: []reconcile.SummaryRow{
			{Module: reconcile.CoalitionsModule, Update: reconcile.CoalitionUpdateColumn, Entries: 3},
			{Module: reconcile.ProgramActivitiesModule, Update: reconcile.SurveyUpdateColumn, Entries: 1},
		},
		ReportPath: "/out/Quarterly Coalition Survey Entry Q2.xlsx",
		FormerPath: "/out/Former Staff Coalition Survey Entry Q2.xlsx",
		Sent:       5,
		Failures: []notify.Failure{
			{Name: "Jane Doe", Email: "jdoe@illinois.edu", Err: assert.AnError},
		},
	}

	var b strings.Builder
	require.NoError(t, printRunResult(&b, result))
	out := b.String()

	assert.Contains(t, out, "Q2")
	assert.Contains(t, out, reconcile.CoalitionsModule)
	assert.Contains(t, out, result.ReportPath)
	assert.Contains(t, out, result.FormerPath)
	assert.Contains(t, out, "Notifications sent: 5")
	assert.Contains(t, out, "jdoe@illinois.edu")
}

func TestRenderTableEmpty(t *testing.T) {
	var b strings.Builder
	err := renderTable(&b, reconcile.SummaryTable(nil))
	require.NoError(t, err)
	assert.Contains(t, b.String(), "MODULE")
}
