// Package reconcile joins the Coalitions registry and the quarterly survey
// responses against the reference tables and flags every record that
// violates a program business rule. It runs two independent passes, one
// per dataset, and emits the corrections tables plus a per-module summary.
package reconcile

import (
	"strings"

	"github.com/inepdata/surveysweep/pkg/pears"
	"github.com/inepdata/surveysweep/pkg/refdata"
)

// Module names used in the corrections summary and update-note catalog.
const (
	CoalitionsModule        = "Coalitions"
	ProgramActivitiesModule = "Program Activities"
)

// Flag-message column labels, matching the PEARS corrections workflow.
const (
	CoalitionUpdateColumn = "UPDATES"
	SurveyUpdateColumn    = "EVALUATION TAB UPDATES"
)

// Flag messages. Each flagged row carries exactly one message.
const (
	CoalitionUpdateMessage = "Please submit a Coalition Survey for this Coalition."
	SurveyUpdateMessage    = "Coalition ID must be an exact match of the PEARS Coalition module that corresponds to this survey."
)

// CoaCorrection is a coalition flagged for correction.
type CoaCorrection struct {
	pears.CoalitionRecord
	Update string
}

// SurveyCorrection is a survey response flagged for correction.
type SurveyCorrection struct {
	pears.SurveyResponse
	Update string
}

// SummaryRow is one line of the corrections summary: flagged-entry count
// per module, joined to the update-note catalog's guidance text.
type SummaryRow struct {
	Module  string
	Update  string
	Entries int
	Notes   string // empty when the catalog has no matching entry
}

// Result holds both corrections tables and the derived summary.
type Result struct {
	Coalitions []CoaCorrection
	Surveys    []SurveyCorrection
	Summary    []SummaryRow
}

// Engine applies the flagging rules. It is stateless across runs; the
// reference tables it holds are never mutated.
type Engine struct {
	counties *refdata.UnitCounties
	notes    refdata.UpdateNotes
}

// New creates an Engine bound to the run's reference tables.
func New(counties *refdata.UnitCounties, notes refdata.UpdateNotes) *Engine {
	return &Engine{counties: counties, notes: notes}
}

// unitSuffixes strips the annotations PEARS appends to unit labels.
// Case-sensitive literal strip, same as the source exports use.
var unitSuffixes = strings.NewReplacer(
	" (County)", "",
	" (District)", "",
	"Unit ", "",
)

// NormalizeUnit canonicalizes a coalition's unit label: suffix annotations
// are stripped, then county names are replaced with their unit code. A
// value that is already a valid unit code is left unchanged.
func (e *Engine) NormalizeUnit(raw string) string {
	u := unitSuffixes.Replace(raw)
	if !e.counties.IsUnit(u) {
		if unit, ok := e.counties.UnitByCounty(u); ok {
			return unit
		}
	}
	return u
}

// Reconcile runs both validation passes and builds the summary.
//
// Coalition pass: test-named coalitions are excluded; units are
// canonicalized; a coalition is flagged iff its relationship depth
// requires a survey, no response matches its id, and it is not on hiatus.
//
// Survey pass: a response is flagged iff its normalized coalition id is
// absent from the active coalition set. A malformed id ("" after
// normalization) never matches, so it yields a correction, not an error.
func (e *Engine) Reconcile(coalitions []pears.CoalitionRecord, surveys []pears.SurveyResponse) *Result {
	surveyedIDs := make(map[string]struct{}, len(surveys))
	for _, s := range surveys {
		if s.CoalitionID != "" {
			surveyedIDs[s.CoalitionID] = struct{}{}
		}
	}

	var coaCorrections []CoaCorrection
	activeIDs := make(map[string]struct{}, len(coalitions))
	for _, c := range coalitions {
		if pears.IsTestName(c.Name) {
			continue
		}
		c.Unit = e.NormalizeUnit(c.Unit)
		if c.ID != "" {
			activeIDs[c.ID] = struct{}{}
		}

		_, surveyed := surveyedIDs[c.ID]
		if c.Depth.RequiresSurvey() && !surveyed && !c.OnHiatus {
			coaCorrections = append(coaCorrections, CoaCorrection{
				CoalitionRecord: c,
				Update:          CoalitionUpdateMessage,
			})
		}
	}

	var surveyCorrections []SurveyCorrection
	for _, s := range surveys {
		if _, ok := activeIDs[s.CoalitionID]; ok {
			continue
		}
		surveyCorrections = append(surveyCorrections, SurveyCorrection{
			SurveyResponse: s,
			Update:         SurveyUpdateMessage,
		})
	}

	return &Result{
		Coalitions: coaCorrections,
		Surveys:    surveyCorrections,
		Summary:    e.summarize(len(coaCorrections), len(surveyCorrections)),
	}
}

// summarize builds one summary row per flag column, left-joined to the
// update-note catalog by (module, flag-column).
func (e *Engine) summarize(coalitions, surveys int) []SummaryRow {
	rows := []SummaryRow{
		{Module: CoalitionsModule, Update: CoalitionUpdateColumn, Entries: coalitions},
		{Module: ProgramActivitiesModule, Update: SurveyUpdateColumn, Entries: surveys},
	}
	for i := range rows {
		if text, ok := e.notes.Get(rows[i].Module, rows[i].Update); ok {
			rows[i].Notes = text
		}
	}
	return rows
}
