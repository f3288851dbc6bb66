// Package period derives the active reporting quarter from the run date.
//
// The pipeline runs in the month immediately following quarter-end, so the
// quarter is keyed off the month one month prior to "today". Any other run
// month is a configuration error, not a guessable state.
package period

import (
	"fmt"
	"time"

	"github.com/inepdata/surveysweep/pkg/errors"
)

// Period identifies one reporting quarter and the label staff select in
// the Coalition Survey's "which quarter" question.
type Period struct {
	Quarter     string // "Q1".."Q4"
	SurveyLabel string // e.g. "Quarter 2 (January-March)"
}

// quarterByMonth maps the month of quarter-end to its reporting quarter.
var quarterByMonth = map[time.Month]Period{
	time.December:  {Quarter: "Q1", SurveyLabel: "Quarter 1 (October-December)"},
	time.March:     {Quarter: "Q2", SurveyLabel: "Quarter 2 (January-March)"},
	time.June:      {Quarter: "Q3", SurveyLabel: "Quarter 3 (April-June)"},
	time.September: {Quarter: "Q4", SurveyLabel: "Quarter 4 (July-September)"},
}

// Resolve returns the active reporting period for the given run date.
// It returns a ConfigError when the prior month is not a quarter-end
// month (December, March, June, September).
func Resolve(now time.Time) (Period, error) {
	// Month arithmetic, not AddDate: AddDate normalizes day-of-month and
	// would skip a month when run on the 31st.
	prior := now.Month() - 1
	if prior == 0 {
		prior = time.December
	}

	p, ok := quarterByMonth[prior]
	if !ok {
		return Period{}, errors.NewConfigError("period",
			fmt.Sprintf("no reporting quarter ends in %s; run this pipeline in the month after quarter-end", prior),
			nil)
	}
	return p, nil
}

// Deadline returns the corrections deadline for the given run date: the
// 19th of the current month.
func Deadline(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 19, 0, 0, 0, 0, now.Location())
}

// FormatDeadline renders a deadline the way notification bodies expect,
// e.g. "Tuesday Apr 19, 2022".
func FormatDeadline(d time.Time) string {
	return d.Format("Monday Jan 02, 2006")
}
