package period_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/inepdata/surveysweep/pkg/errors"
	"github.com/inepdata/surveysweep/pkg/period"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		quarter   string
		label     string
	}{
		{"january run closes Q1", date(2022, time.January, 5), "Q1", "Quarter 1 (October-December)"},
		{"april run closes Q2", date(2022, time.April, 12), "Q2", "Quarter 2 (January-March)"},
		{"july run closes Q3", date(2022, time.July, 1), "Q3", "Quarter 3 (April-June)"},
		{"october run closes Q4", date(2022, time.October, 19), "Q4", "Quarter 4 (July-September)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := period.Resolve(tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.quarter, p.Quarter)
			assert.Equal(t, tt.label, p.SurveyLabel)
		})
	}
}

func TestResolveOffCycleMonth(t *testing.T) {
	for _, m := range []time.Month{time.February, time.March, time.May, time.June,
		time.August, time.September, time.November, time.December} {
		_, err := period.Resolve(date(2022, m, 10))
		assert.Error(t, err, "month %s", m)
		assert.True(t, pkgerrors.IsBadConfig(err))
	}
}

func TestResolveMonthEnd(t *testing.T) {
	// The 31st must not normalize into the wrong prior month.
	p, err := period.Resolve(date(2022, time.July, 31))
	require.NoError(t, err)
	assert.Equal(t, "Q3", p.Quarter)
}

func TestDeadline(t *testing.T) {
	d := period.Deadline(date(2022, time.April, 4))
	assert.Equal(t, 19, d.Day())
	assert.Equal(t, time.April, d.Month())
	assert.Equal(t, "Tuesday Apr 19, 2022", period.FormatDeadline(d))
}
