// Package xlsx provides sheet-level read access to the pipeline's input
// workbooks. It wraps excelize with a header-indexed row model so loaders
// address cells by column name rather than position.
package xlsx

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/inepdata/surveysweep/pkg/errors"
)

// Sheet holds one worksheet's rows indexed by its header row.
type Sheet struct {
	Path    string
	Name    string
	headers []string
	index   map[string]int
	rows    [][]string
}

// Row is a single data row addressed by column name.
type Row struct {
	sheet *Sheet
	cells []string
}

// ReadSheet loads the named worksheet from the workbook at path. The first
// row is treated as the header. A missing file or sheet is a DataSourceError.
func ReadSheet(path, sheet string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewDataSourceError(path, "", err)
	}
	defer f.Close()

	return readSheet(f, path, sheet)
}

// ReadFirstSheet loads the first worksheet of the workbook at path, for
// single-table workbooks whose sheet name is not part of the contract.
func ReadFirstSheet(path string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewDataSourceError(path, "", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewDataSourceError(path, "", errors.New("workbook has no sheets"))
	}
	return readSheet(f, path, sheets[0])
}

// ReadSheets loads several worksheets from a single workbook, opening the
// file once. Results are keyed by sheet name.
func ReadSheets(path string, sheets ...string) (map[string]*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewDataSourceError(path, "", err)
	}
	defer f.Close()

	out := make(map[string]*Sheet, len(sheets))
	for _, name := range sheets {
		s, err := readSheet(f, path, name)
		if err != nil {
			return nil, err
		}
		out[name] = s
	}
	return out, nil
}

func readSheet(f *excelize.File, path, sheet string) (*Sheet, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewDataSourceError(path, sheet, err)
	}
	if len(rows) == 0 {
		return nil, errors.NewDataSourceError(path, sheet, errors.New("sheet has no header row"))
	}

	s := &Sheet{
		Path:    path,
		Name:    sheet,
		headers: rows[0],
		index:   make(map[string]int, len(rows[0])),
		rows:    rows[1:],
	}
	for i, h := range rows[0] {
		s.index[strings.TrimSpace(h)] = i
	}
	return s, nil
}

// Headers returns the header row.
func (s *Sheet) Headers() []string {
	return s.headers
}

// RenameHeaders rewrites header names through the given mapping. Unmapped
// headers keep their original name. Applied once, at the load boundary.
func (s *Sheet) RenameHeaders(mapping map[string]string) {
	for i, h := range s.headers {
		if renamed, ok := mapping[strings.TrimSpace(h)]; ok {
			s.headers[i] = renamed
		}
	}
	s.index = make(map[string]int, len(s.headers))
	for i, h := range s.headers {
		s.index[strings.TrimSpace(h)] = i
	}
}

// Len returns the number of data rows.
func (s *Sheet) Len() int {
	return len(s.rows)
}

// Rows returns all data rows.
func (s *Sheet) Rows() []Row {
	out := make([]Row, len(s.rows))
	for i, cells := range s.rows {
		out[i] = Row{sheet: s, cells: cells}
	}
	return out
}

// HasColumn reports whether the sheet's header contains the column.
func (s *Sheet) HasColumn(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Get returns the trimmed cell value for the named column, or "" when the
// column is absent or the row is ragged (excelize drops trailing empties).
func (r Row) Get(column string) string {
	i, ok := r.sheet.index[column]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}
