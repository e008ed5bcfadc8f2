package views

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"core-temp/models"
)

// SheetName returns the workbook sheet holding channel k.
func SheetName(k int) string { return fmt.Sprintf("core-%d", k) }

// ExportWorkbook writes one sheet per channel to an .xlsx file at path. Each
// sheet has a header row followed by one row per interval.
func ExportWorkbook(path string, orig, interp *models.ChannelMatrix, dt float64) error {
	if err := CheckShapes(orig, interp); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	header := SchemaColumns[ExportXLSX]
	for k := 0; k < interp.NumChannels(); k++ {
		sheet := SheetName(k)
		idx, err := f.NewSheet(sheet)
		if err != nil {
			return fmt.Errorf("xlsx: new sheet %s: %w", sheet, err)
		}
		if k == 0 {
			f.SetActiveSheet(idx)
		}

		hdr := make([]interface{}, len(header))
		for i, h := range header {
			hdr[i] = h
		}
		if err := f.SetSheetRow(sheet, "A1", &hdr); err != nil {
			return fmt.Errorf("xlsx: header %s: %w", sheet, err)
		}

		for i, iv := range Intervals(orig, interp, dt, k) {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return fmt.Errorf("xlsx: %w", err)
			}
			row := []interface{}{iv.T0, iv.T1, iv.Y0, iv.Slope}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return fmt.Errorf("xlsx: row %d of %s: %w", i, sheet, err)
			}
		}
	}

	// NewFile seeds a default sheet that no channel uses.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return &models.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
