// Package report writes corrections tables to formatted xlsx workbooks:
// auto-filtered and frozen header rows, columns sized to their content.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/inepdata/surveysweep/pkg/errors"
	"github.com/inepdata/surveysweep/pkg/reconcile"
)

// excelize rejects column widths beyond 255 characters.
const maxColWidth = 255

// QuarterlyFilename returns the quarterly report workbook name,
// e.g. "Quarterly Coalition Survey Entry Q2.xlsx".
func QuarterlyFilename(quarter string) string {
	return fmt.Sprintf("Quarterly Coalition Survey Entry %s.xlsx", quarter)
}

// FormerStaffFilename returns the former-staff workbook name,
// e.g. "Former Staff Coalition Survey Entry Q2.xlsx".
func FormerStaffFilename(quarter string) string {
	return fmt.Sprintf("Former Staff Coalition Survey Entry %s.xlsx", quarter)
}

// Write renders the tables to one workbook at path, one sheet per table
// in order. Sheet names come from each table's Name.
func Write(path string, tables ...reconcile.Table) error {
	if len(tables) == 0 {
		return errors.NewValidationError("tables", nil, "at least one table required")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, table := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", table.Name); err != nil {
				return errors.WrapIO("write", path, err)
			}
		} else {
			if _, err := f.NewSheet(table.Name); err != nil {
				return errors.WrapIO("write", path, err)
			}
		}
		if err := writeSheet(f, table); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, table reconcile.Table) error {
	header := make([]any, len(table.Headers))
	for i, h := range table.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(table.Name, "A1", &header); err != nil {
		return err
	}

	for i, row := range table.Rows {
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		ref, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(table.Name, ref, &cells); err != nil {
			return err
		}
	}

	if err := formatSheet(f, table); err != nil {
		return err
	}
	return nil
}

// formatSheet applies the report conventions: filter + freeze on the
// header row, column widths fit to the longest value plus one.
func formatSheet(f *excelize.File, table reconcile.Table) error {
	if len(table.Headers) == 0 {
		return nil
	}

	lastCol, err := excelize.ColumnNumberToName(len(table.Headers))
	if err != nil {
		return err
	}
	if err := f.AutoFilter(table.Name, "A1:"+lastCol+"1", nil); err != nil {
		return err
	}
	if err := f.SetPanes(table.Name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	for i, h := range table.Headers {
		width := len(h)
		for _, row := range table.Rows {
			if i < len(row) && len(row[i]) > width {
				width = len(row[i])
			}
		}
		width++
		if width > maxColWidth {
			width = maxColWidth
		}

		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(table.Name, col, col, float64(width)); err != nil {
			return err
		}
	}
	return nil
}
