// Package xlsx exports the analysis frame as an Excel workbook. Importing
// this package (a blank import suffices) registers the "xlsx" format with
// the export registry.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/benwebber/domesday/pkg/export"
)

const defaultSheet = "Landholders"

func init() {
	export.Register("xlsx", func() export.Exporter {
		return &Exporter{Sheet: defaultSheet}
	})
}

// Exporter writes a frame to an .xlsx file with a styled header row and
// typed cells: the holding columns land as numbers, everything else as
// text, absent values as empty cells.
type Exporter struct {
	Sheet string
}

// Export implements export.Exporter.
func (e *Exporter) Export(ctx context.Context, frame *export.Frame, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := e.Sheet
	if sheet == "" {
		sheet = defaultSheet
	}

	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if sheet != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for col, name := range frame.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		f.SetCellValue(sheet, cell, name)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for r, row := range frame.Rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		for c, value := range row {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	e.sizeColumns(f, sheet, frame)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// sizeColumns widens each column to its longest value, capped so a long
// description does not blow the sheet apart.
func (e *Exporter) sizeColumns(f *excelize.File, sheet string, frame *export.Frame) {
	const maxWidth = 60

	for c, name := range frame.Columns {
		width := len(name)
		for _, row := range frame.Rows {
			if s, ok := row[c].(string); ok && len(s) > width {
				width = len(s)
			}
		}
		if width > maxWidth {
			width = maxWidth
		}
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			continue
		}
		f.SetColWidth(sheet, col, col, float64(width+2))
	}
}
