// Package pears loads the PEARS module exports the pipeline reconciles:
// the Coalitions registry and the quarterly Coalition Survey responses.
// Loaders filter to the in-scope program areas and reporting period and
// normalize identifiers, so downstream passes work on clean records.
package pears

import "time"

// Program areas in scope for quarterly data cleaning.
const (
	ProgramAreaSNAPEd = "SNAP-Ed"
	ProgramAreaFCS    = "Family Consumer Science"
)

// RelationshipDepth is the coalition's stage of development.
type RelationshipDepth string

// Relationship depths that require a quarterly Coalition Survey.
const (
	DepthNone          RelationshipDepth = "None"
	DepthCoordination  RelationshipDepth = "Coordination"
	DepthCoalition     RelationshipDepth = "Coalition"
	DepthCollaboration RelationshipDepth = "Collaboration"
)

// RequiresSurvey reports whether coalitions at this depth must submit a
// quarterly Coalition Survey.
func (d RelationshipDepth) RequiresSurvey() bool {
	switch d {
	case DepthCoordination, DepthCoalition, DepthCollaboration:
		return true
	}
	return false
}

// CoalitionRecord is one row of the Coalitions registry export.
type CoalitionRecord struct {
	ID           string // digits-only after normalization
	Name         string
	Unit         string // raw export value; canonicalized by the reconcile pass
	ProgramArea  string
	Depth        RelationshipDepth
	ReportedBy   string // staff email
	OnHiatus     bool
	Created      string
	Modified     string
	FirstMeeting time.Time // earliest recorded meeting, zero when none; contextual only
}

// SurveyResponse is one row of the quarter's Coalition Survey export.
type SurveyResponse struct {
	ResponseID    string
	CoalitionID   string // digits-only after normalization, "" when unextractable
	ProgramID     string
	ProgramName   string
	ReportedBy    string // staff email
	CoalitionName string
	Quarter       string // survey-label string, already matched to the active period
}
