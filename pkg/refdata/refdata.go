// Package refdata loads the static reference tables the pipeline joins
// against: the unioned staff directory, regional-educator assignments per
// unit, the county-to-unit map, and the update-note catalog. All tables
// are built fresh each run and never mutated afterwards.
package refdata

// Bundle holds every reference table, loaded once per run.
type Bundle struct {
	Staff    *Directory
	Regional Assignments
	Counties *UnitCounties
	Notes    UpdateNotes
}

// Load reads all reference tables. A missing workbook or sheet is fatal:
// nothing downstream is meaningful with a partial reference set.
func Load(staffPath, countiesPath, notesPath string) (*Bundle, error) {
	staff, err := LoadDirectory(staffPath)
	if err != nil {
		return nil, err
	}
	regional, err := LoadAssignments(staffPath)
	if err != nil {
		return nil, err
	}
	counties, err := LoadUnitCounties(countiesPath)
	if err != nil {
		return nil, err
	}
	notes, err := LoadUpdateNotes(notesPath)
	if err != nil {
		return nil, err
	}

	return &Bundle{
		Staff:    staff,
		Regional: regional,
		Counties: counties,
		Notes:    notes,
	}, nil
}
