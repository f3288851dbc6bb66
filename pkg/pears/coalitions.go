package pears

import (
	"time"

	"github.com/inepdata/surveysweep/internal/schema"
	"github.com/inepdata/surveysweep/internal/xlsx"
)

// Sheet names in the Coalitions registry export.
const (
	coalitionDataSheet = "Coalition Data"
	meetingsSheet      = "Meetings"
)

// Date layouts seen in PEARS exports, most specific first.
var meetingLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006",
	"01-02-06",
}

// LoadCoalitions reads the Coalitions registry workbook. Records are
// filtered to the in-scope program areas and annotated with the earliest
// recorded meeting date per coalition.
func LoadCoalitions(path string) ([]CoalitionRecord, error) {
	sheets, err := xlsx.ReadSheets(path, coalitionDataSheet, meetingsSheet)
	if err != nil {
		return nil, err
	}

	data := sheets[coalitionDataSheet]
	data.RenameHeaders(schema.Columns("coalition"))

	firstMeetings := earliestMeetings(sheets[meetingsSheet])

	var records []CoalitionRecord
	for _, row := range data.Rows() {
		area := row.Get("program_area")
		if area != ProgramAreaSNAPEd && area != ProgramAreaFCS {
			continue
		}

		id := NormalizeID(row.Get("coalition_id"))
		records = append(records, CoalitionRecord{
			ID:           id,
			Name:         row.Get("coalition_name"),
			Unit:         row.Get("unit"),
			ProgramArea:  area,
			Depth:        RelationshipDepth(row.Get("relationship_depth")),
			ReportedBy:   row.Get("reported_by_email"),
			OnHiatus:     row.Get("on_hiatus") == "Yes",
			Created:      row.Get("created"),
			Modified:     row.Get("modified"),
			FirstMeeting: firstMeetings[id],
		})
	}
	return records, nil
}

// earliestMeetings reduces the Meetings sheet to the earliest start date
// per coalition id. Unparseable dates are skipped; the join is contextual
// metadata, not a validation input.
func earliestMeetings(sheet *xlsx.Sheet) map[string]time.Time {
	earliest := make(map[string]time.Time)
	for _, row := range sheet.Rows() {
		id := NormalizeID(row.Get("coalition_id"))
		if id == "" {
			continue
		}

		start, ok := parseMeetingDate(row.Get("start_date"))
		if !ok {
			continue
		}
		if cur, seen := earliest[id]; !seen || start.Before(cur) {
			earliest[id] = start
		}
	}
	return earliest
}

func parseMeetingDate(raw string) (time.Time, bool) {
	for _, layout := range meetingLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
