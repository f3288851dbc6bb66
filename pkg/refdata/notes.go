package refdata

import "github.com/inepdata/surveysweep/internal/xlsx"

const notesSheet = "Quarterly Data Cleaning"

// NoteKey identifies one update-note catalog entry.
type NoteKey struct {
	Module string
	Update string
}

// UpdateNotes is the catalog of human-readable guidance per flag message.
type UpdateNotes map[NoteKey]string

// LoadUpdateNotes reads the update-note catalog from the notifications
// workbook. The sheet's Tab column is bookkeeping for the catalog editors
// and is ignored here.
func LoadUpdateNotes(path string) (UpdateNotes, error) {
	sheet, err := xlsx.ReadSheet(path, notesSheet)
	if err != nil {
		return nil, err
	}

	notes := make(UpdateNotes)
	for _, row := range sheet.Rows() {
		key := NoteKey{Module: row.Get("Module"), Update: row.Get("Update")}
		if key.Module == "" || key.Update == "" {
			continue
		}
		notes[key] = row.Get("Notes")
	}
	return notes, nil
}

// Get returns the guidance text for a (module, flag-message) pair.
func (n UpdateNotes) Get(module, update string) (string, bool) {
	text, ok := n[NoteKey{Module: module, Update: update}]
	return text, ok
}
