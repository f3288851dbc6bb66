// Package router partitions correction rows by the staff member
// responsible for them. Recipients found in the staff directory get a
// per-person bundle with an optional regional-specialist cc escalation;
// rows owned by former staff are aggregated into one combined bundle for
// the data-entry support team.
package router

import (
	"strings"

	"github.com/inepdata/surveysweep/pkg/errors"
	"github.com/inepdata/surveysweep/pkg/reconcile"
	"github.com/inepdata/surveysweep/pkg/refdata"
)

// Recipient is one current staff member with corrections to make.
type Recipient struct {
	Email      string
	FirstName  string
	FullName   string
	Unit       string // from the recipient's first coalition correction, may be ""
	Coalitions []reconcile.CoaCorrection
	Surveys    []reconcile.SurveyCorrection

	// Educator is the regional specialist cc'd on the notification.
	// Nil when no escalation applies and the generic contact sentence
	// is used instead.
	Educator *refdata.Educator
}

// FormerStaff aggregates corrections owned by staff no longer in the
// directory. No contact info exists for them, so rows are combined into
// one export rather than routed individually.
type FormerStaff struct {
	Emails     []string
	Coalitions []reconcile.CoaCorrection
	Surveys    []reconcile.SurveyCorrection
}

// Empty reports whether former staff own no corrections at all.
func (f FormerStaff) Empty() bool {
	return len(f.Coalitions) == 0 && len(f.Surveys) == 0
}

// Routes is the full recipient partition for one run.
type Routes struct {
	Current []Recipient
	Former  FormerStaff
}

// Router resolves correction ownership against the reference tables.
type Router struct {
	staff          *refdata.Directory
	regional       refdata.Assignments
	excludedDomain string
}

// New creates a Router. excludedDomain is the mail domain whose staff
// never get regional escalation (their units are served out of the state
// office), e.g. "uic.edu".
func New(staff *refdata.Directory, regional refdata.Assignments, excludedDomain string) *Router {
	return &Router{staff: staff, regional: regional, excludedDomain: excludedDomain}
}

// Route partitions the corrections by responsible recipient. Every
// distinct reported_by_email lands in exactly one of current or former.
// A LookupError is returned only when a current recipient's directory row
// vanishes between partition and name resolution, which signals corrupt
// reference data.
func (r *Router) Route(result *reconcile.Result) (*Routes, error) {
	// Distinct recipients in first-seen order: coalition rows first,
	// carrying the coalition's unit, then survey-only reporters.
	type owner struct {
		email string
		unit  string
	}
	var owners []owner
	seen := make(map[string]struct{})
	for _, c := range result.Coalitions {
		if _, ok := seen[c.ReportedBy]; ok {
			continue
		}
		seen[c.ReportedBy] = struct{}{}
		owners = append(owners, owner{email: c.ReportedBy, unit: c.Unit})
	}
	for _, s := range result.Surveys {
		if _, ok := seen[s.ReportedBy]; ok {
			continue
		}
		seen[s.ReportedBy] = struct{}{}
		owners = append(owners, owner{email: s.ReportedBy})
	}

	routes := &Routes{}
	for _, o := range owners {
		if !r.staff.Contains(o.email) {
			routes.Former.Emails = append(routes.Former.Emails, o.email)
			continue
		}

		member, ok := r.staff.Lookup(o.email)
		if !ok {
			return nil, errors.NewLookupError("staff directory", o.email)
		}

		rec := Recipient{
			Email:     o.email,
			FirstName: member.FirstName,
			FullName:  member.FullName,
			Unit:      o.unit,
		}
		for _, c := range result.Coalitions {
			if c.ReportedBy == o.email {
				rec.Coalitions = append(rec.Coalitions, c)
			}
		}
		for _, s := range result.Surveys {
			if s.ReportedBy == o.email {
				rec.Surveys = append(rec.Surveys, s)
			}
		}
		rec.Educator = r.escalation(rec)

		routes.Current = append(routes.Current, rec)
	}

	former := make(map[string]struct{}, len(routes.Former.Emails))
	for _, email := range routes.Former.Emails {
		former[email] = struct{}{}
	}
	for _, c := range result.Coalitions {
		if _, ok := former[c.ReportedBy]; ok {
			routes.Former.Coalitions = append(routes.Former.Coalitions, c)
		}
	}
	for _, s := range result.Surveys {
		if _, ok := former[s.ReportedBy]; ok {
			routes.Former.Surveys = append(routes.Former.Surveys, s)
		}
	}

	return routes, nil
}

// escalation resolves the regional-specialist cc: the recipient's unit
// must have an assigned educator, and the recipient must be neither
// state-office staff nor on the excluded mail domain.
func (r *Router) escalation(rec Recipient) *refdata.Educator {
	if rec.Unit == "" {
		return nil
	}
	educator, ok := r.regional.Lookup(rec.Unit)
	if !ok {
		return nil
	}
	if r.staff.IsStateOffice(rec.Email) {
		return nil
	}
	if r.excludedDomain != "" && strings.HasSuffix(rec.Email, "@"+r.excludedDomain) {
		return nil
	}
	return &educator
}
