package refdata

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/inepdata/surveysweep/internal/schema"
	"github.com/inepdata/surveysweep/internal/xlsx"
)

var countyCaser = cases.Title(language.AmericanEnglish)

// UnitCounties is the bidirectional county-name <-> unit-code lookup.
type UnitCounties struct {
	unitByCounty map[string]string
	countyByUnit map[string][]string
}

// NewUnitCounties builds the lookup from county->unit pairs directly.
func NewUnitCounties(unitByCounty map[string]string) *UnitCounties {
	uc := &UnitCounties{
		unitByCounty: make(map[string]string, len(unitByCounty)),
		countyByUnit: make(map[string][]string),
	}
	for county, unit := range unitByCounty {
		county = countyCaser.String(county)
		uc.unitByCounty[county] = unit
		uc.countyByUnit[unit] = append(uc.countyByUnit[unit], county)
	}
	return uc
}

// LoadUnitCounties reads the unit-counties workbook (single table, first
// sheet). County names are stored in canonical title case so lookups are
// insensitive to export casing.
func LoadUnitCounties(path string) (*UnitCounties, error) {
	sheet, err := xlsx.ReadFirstSheet(path)
	if err != nil {
		return nil, err
	}
	sheet.RenameHeaders(schema.Columns("unit_counties"))

	uc := &UnitCounties{
		unitByCounty: make(map[string]string),
		countyByUnit: make(map[string][]string),
	}
	for _, row := range sheet.Rows() {
		county := countyCaser.String(row.Get("county"))
		unit := row.Get("unit")
		if county == "" || unit == "" {
			continue
		}
		uc.unitByCounty[county] = unit
		uc.countyByUnit[unit] = append(uc.countyByUnit[unit], county)
	}
	return uc, nil
}

// UnitByCounty returns the unit code serving a county.
func (uc *UnitCounties) UnitByCounty(county string) (string, bool) {
	unit, ok := uc.unitByCounty[countyCaser.String(county)]
	return unit, ok
}

// CountiesByUnit returns the counties a unit serves.
func (uc *UnitCounties) CountiesByUnit(unit string) []string {
	return uc.countyByUnit[unit]
}

// IsUnit reports whether the value is a known unit code.
func (uc *UnitCounties) IsUnit(code string) bool {
	_, ok := uc.countyByUnit[code]
	return ok
}

// IsCounty reports whether the value is a known county name.
func (uc *UnitCounties) IsCounty(name string) bool {
	_, ok := uc.unitByCounty[countyCaser.String(name)]
	return ok
}
