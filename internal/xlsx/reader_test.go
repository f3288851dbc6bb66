package xlsx_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/inepdata/surveysweep/internal/xlsx"
	pkgerrors "github.com/inepdata/surveysweep/pkg/errors"
)

// writeWorkbook builds a small two-sheet workbook for read tests.
func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Coalition Data"))
	rows := [][]any{
		{"coalition_id", "coalition_name", "program_area"},
		{"501", "Champaign Wellness Coalition", "SNAP-Ed"},
		{"502", "Peoria Food Council", "Family Consumer Science"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Coalition Data", cell, &row))
	}

	_, err := f.NewSheet("Meetings")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Meetings", "A1", &[]any{"coalition_id", "start_date"}))
	require.NoError(t, f.SetSheetRow("Meetings", "A2", &[]any{"501", "2022-01-12"}))

	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadSheet(t *testing.T) {
	path := writeWorkbook(t)

	s, err := xlsx.ReadSheet(path, "Coalition Data")
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.HasColumn("coalition_id"))

	rows := s.Rows()
	assert.Equal(t, "501", rows[0].Get("coalition_id"))
	assert.Equal(t, "Peoria Food Council", rows[1].Get("coalition_name"))
	assert.Equal(t, "", rows[0].Get("missing_column"))
}

func TestReadSheets(t *testing.T) {
	path := writeWorkbook(t)

	sheets, err := xlsx.ReadSheets(path, "Coalition Data", "Meetings")
	require.NoError(t, err)
	assert.Len(t, sheets, 2)
	assert.Equal(t, 1, sheets["Meetings"].Len())
}

func TestReadSheetMissingFile(t *testing.T) {
	_, err := xlsx.ReadSheet(filepath.Join(t.TempDir(), "absent.xlsx"), "Coalition Data")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsDataSource(err))
}

func TestReadSheetMissingSheet(t *testing.T) {
	path := writeWorkbook(t)

	_, err := xlsx.ReadSheet(path, "Nope")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsDataSource(err))
}

func TestRenameHeaders(t *testing.T) {
	path := writeWorkbook(t)

	s, err := xlsx.ReadSheet(path, "Coalition Data")
	require.NoError(t, err)

	s.RenameHeaders(map[string]string{"coalition_name": "name"})
	assert.True(t, s.HasColumn("name"))
	assert.False(t, s.HasColumn("coalition_name"))
	assert.Equal(t, "Champaign Wellness Coalition", s.Rows()[0].Get("name"))
}
