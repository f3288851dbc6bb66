package refdata

import (
	"strings"

	"github.com/inepdata/surveysweep/internal/schema"
	"github.com/inepdata/surveysweep/internal/xlsx"
)

// Staff-list sheets unioned into the directory. The INEP sheets share one
// "Last, First" NAME column; the CPHP sheet splits names into two columns.
const (
	snapEdStaffSheet = "SNAP-Ed Staff List"
	heatStaffSheet   = "HEAT Project Staff"
	stateOfficeSheet = "FCS State Office"
	cphpStaffSheet   = "CPHP Staff List"
	regionalSheet    = "RE's and CD's"
)

// StaffMember is one row of the unioned staff directory.
type StaffMember struct {
	Email     string
	FirstName string
	LastName  string
	FullName  string
}

// Directory is the authoritative staff snapshot for this run. Membership
// decides the current/former partition; the state-office subset feeds the
// regional cc rule.
type Directory struct {
	members     map[string]StaffMember
	stateOffice map[string]struct{}
}

// NewDirectory builds a directory from member records directly.
func NewDirectory(members []StaffMember, stateOffice ...string) *Directory {
	d := &Directory{
		members:     make(map[string]StaffMember, len(members)),
		stateOffice: make(map[string]struct{}, len(stateOffice)),
	}
	for _, m := range members {
		d.add(m)
	}
	for _, email := range stateOffice {
		d.stateOffice[email] = struct{}{}
	}
	return d
}

// LoadDirectory builds the staff directory from the staff-list workbook.
// Rows missing a name or email are dropped silently; the directory is a
// best-effort snapshot, not a validated input.
func LoadDirectory(path string) (*Directory, error) {
	sheets, err := xlsx.ReadSheets(path, snapEdStaffSheet, heatStaffSheet, stateOfficeSheet, cphpStaffSheet)
	if err != nil {
		return nil, err
	}

	d := &Directory{
		members:     make(map[string]StaffMember),
		stateOffice: make(map[string]struct{}),
	}

	for _, name := range []string{snapEdStaffSheet, heatStaffSheet, stateOfficeSheet} {
		sheet := sheets[name]
		sheet.RenameHeaders(schema.Columns("inep_staff"))
		for _, row := range sheet.Rows() {
			m, ok := fromCommaName(row.Get("name"), row.Get("email"))
			if !ok {
				continue
			}
			d.add(m)
			if name == stateOfficeSheet {
				d.stateOffice[m.Email] = struct{}{}
			}
		}
	}

	cphp := sheets[cphpStaffSheet]
	cphp.RenameHeaders(schema.Columns("cphp_staff"))
	for _, row := range cphp.Rows() {
		first, last, email := row.Get("first_name"), row.Get("last_name"), row.Get("email")
		if first == "" || last == "" || email == "" {
			continue
		}
		d.add(StaffMember{
			Email:     email,
			FirstName: first,
			LastName:  last,
			FullName:  first + " " + last,
		})
	}

	return d, nil
}

func (d *Directory) add(m StaffMember) {
	// First occurrence wins across the unioned lists.
	if _, seen := d.members[m.Email]; !seen {
		d.members[m.Email] = m
	}
}

// Lookup returns the staff member for an email.
func (d *Directory) Lookup(email string) (StaffMember, bool) {
	m, ok := d.members[email]
	return m, ok
}

// Contains reports whether the email belongs to current staff.
func (d *Directory) Contains(email string) bool {
	_, ok := d.members[email]
	return ok
}

// IsStateOffice reports whether the email belongs to the state office list.
func (d *Directory) IsStateOffice(email string) bool {
	_, ok := d.stateOffice[email]
	return ok
}

// Len returns the number of distinct staff members.
func (d *Directory) Len() int {
	return len(d.members)
}

// fromCommaName builds a StaffMember from a "Last, First" name. Rows with
// a missing field or an unsplittable name are rejected.
func fromCommaName(name, email string) (StaffMember, bool) {
	if name == "" || email == "" {
		return StaffMember{}, false
	}
	last, first, ok := strings.Cut(name, ", ")
	if !ok || first == "" || last == "" {
		return StaffMember{}, false
	}
	return StaffMember{
		Email:     email,
		FirstName: first,
		LastName:  last,
		FullName:  first + " " + last,
	}, true
}
