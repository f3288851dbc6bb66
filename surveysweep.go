// Package surveysweep runs the quarterly Coalition Survey data-quality
// pipeline: load the PEARS exports and reference tables, flag records
// that violate program business rules, write the corrections workbooks,
// and notify the staff responsible for each flagged record.
package surveysweep

import (
	"context"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/inepdata/surveysweep/pkg/notify"
	"github.com/inepdata/surveysweep/pkg/pears"
	"github.com/inepdata/surveysweep/pkg/period"
	"github.com/inepdata/surveysweep/pkg/reconcile"
	"github.com/inepdata/surveysweep/pkg/refdata"
	"github.com/inepdata/surveysweep/pkg/report"
	"github.com/inepdata/surveysweep/pkg/router"
)

// Pipeline is one configured run of the sweep. Instances are built by New
// and are not safe for concurrent reuse; the run itself is sequential.
type Pipeline struct {
	config *config
}

// RunResult summarizes one completed run.
type RunResult struct {
	Period     period.Period
	Summary    []reconcile.SummaryRow
	ReportPath string
	FormerPath string

	// Sent counts successfully delivered messages; Failures lists the
	// recipients whose delivery failed.
	Sent     int
	Failures []notify.Failure
}

// New creates a Pipeline with the given options.
func New(opts ...Option) (*Pipeline, error) {
	c := defaultConfig()
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return &Pipeline{config: c}, nil
}

// Run executes the full sweep. Loading and reconciliation errors are
// fatal; per-recipient delivery failures are collected into the result
// and reported via the failure notice instead.
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	c := p.config
	log := c.logger

	pd, err := period.Resolve(c.now())
	if err != nil {
		return nil, err
	}
	log.Info().Str("quarter", pd.Quarter).Str("label", pd.SurveyLabel).Msg("Resolved reporting period")

	refs, err := refdata.Load(
		filepath.Join(c.inputDir, c.staffFile),
		filepath.Join(c.inputDir, c.countiesFile),
		filepath.Join(c.inputDir, c.notesFile),
	)
	if err != nil {
		return nil, err
	}
	log.Info().Int("staff", refs.Staff.Len()).Msg("Loaded reference tables")

	coalitions, err := pears.LoadCoalitions(filepath.Join(c.inputDir, c.coalitionFile))
	if err != nil {
		return nil, err
	}
	surveys, err := pears.LoadSurveys(filepath.Join(c.inputDir, pears.SurveyWorkbookName(pd)), pd)
	if err != nil {
		return nil, err
	}
	log.Info().Int("coalitions", len(coalitions)).Int("surveys", len(surveys)).Msg("Loaded datasets")

	engine := reconcile.New(refs.Counties, refs.Notes)
	result := engine.Reconcile(coalitions, surveys)
	log.Info().
		Int("coalition_corrections", len(result.Coalitions)).
		Int("survey_corrections", len(result.Surveys)).
		Msg("Reconciliation complete")

	routes, err := router.New(refs.Staff, refs.Regional, c.excludedDomain).Route(result)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("current_staff", len(routes.Current)).
		Int("former_staff", len(routes.Former.Emails)).
		Msg("Partitioned recipients")

	run := &RunResult{Period: pd, Summary: result.Summary}

	run.ReportPath = filepath.Join(c.outputDir, report.QuarterlyFilename(pd.Quarter))
	if err := report.Write(run.ReportPath,
		reconcile.SummaryTable(result.Summary),
		reconcile.CoalitionsTable(result.Coalitions),
		reconcile.SurveysTable(result.Surveys),
	); err != nil {
		return nil, err
	}

	run.FormerPath = filepath.Join(c.outputDir, report.FormerStaffFilename(pd.Quarter))
	if err := report.Write(run.FormerPath,
		reconcile.CoalitionsTable(routes.Former.Coalitions),
		reconcile.SurveysTable(routes.Former.Surveys),
	); err != nil {
		return nil, err
	}
	log.Info().Str("report", run.ReportPath).Str("former", run.FormerPath).Msg("Wrote corrections workbooks")

	if c.dryRun {
		log.Info().Msg("Dry run: skipping notifications")
		return run, nil
	}
	p.sendNotifications(ctx, pd, routes, run)

	return run, nil
}

// sendNotifications delivers every outbound message for the run. Each
// failure is recorded and the remaining sends continue; a final failure
// notice summarizes the casualties.
func (p *Pipeline) sendNotifications(ctx context.Context, pd period.Period, routes *router.Routes, run *RunResult) {
	c := p.config
	deadline := period.FormatDeadline(period.Deadline(c.now()))

	for _, rec := range routes.Current {
		msg, err := notify.StaffNotification(rec, pd.Quarter, deadline, c.cc, c.content)
		if err != nil {
			p.recordFailure(run, rec.FullName, rec.Email, err)
			continue
		}
		if err := c.sender.Send(ctx, msg); err != nil {
			p.recordFailure(run, rec.FullName, rec.Email, err)
			continue
		}
		run.Sent++
		c.logger.Debug().Str("to", rec.Email).Msg("Notification sent")
	}

	// The former-staff bundle goes to data-entry support, and only when
	// former staff still own coalitions needing surveys.
	if len(routes.Former.Coalitions) > 0 && len(c.formerStaffRecipients) > 0 {
		msg, err := notify.FormerStaffNotification(
			c.formerStaffRecipients, pd.Quarter, deadline, run.FormerPath, c.cc, c.content)
		if err == nil {
			err = c.sender.Send(ctx, msg)
		}
		if err != nil {
			p.recordFailure(run, "DATA ENTRY SUPPORT", c.formerStaffRecipients[0], err)
		} else {
			run.Sent++
		}
	}

	if len(c.reportRecipients) > 0 {
		msg, err := notify.ReportNotification(c.reportRecipients, pd.Quarter, run.ReportPath, c.cc, c.content)
		if err == nil {
			err = c.sender.Send(ctx, msg)
		}
		if err != nil {
			// Not added to the failure list: the report audience is not a
			// corrections recipient.
			c.logger.Error().Err(err).Msg("Failed to send quarterly report")
		} else {
			run.Sent++
		}
	}

	if len(run.Failures) > 0 {
		msg, err := notify.FailureNotice([]string{c.content.From}, pd.Quarter, run.Failures, c.cc)
		if err == nil {
			err = c.sender.Send(ctx, msg)
		}
		if err != nil {
			// Terminal: a failed failure notice is logged and dropped.
			c.logger.Error().Err(err).Msg("Failed to send failure notice")
		}
	}
}

func (p *Pipeline) recordFailure(run *RunResult, name, email string, err error) {
	p.config.logger.Error().Err(err).Str("to", email).Msg("Notification failed")
	run.Failures = append(run.Failures, notify.Failure{Name: name, Email: email, Err: err})
}

// Clock returns the pipeline's notion of now, for callers that render
// run-relative values such as the corrections deadline.
func (p *Pipeline) Clock() func() time.Time {
	return p.config.now
}

// Logger returns the pipeline's logger.
func (p *Pipeline) Logger() *zerolog.Logger {
	return &p.config.logger
}
