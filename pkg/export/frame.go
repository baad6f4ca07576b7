package export

import (
	"fmt"

	"github.com/benwebber/domesday/pkg/decimal"
	"github.com/benwebber/domesday/pkg/record"
)

// Frame is the analysis frame: the landholders table with the five
// holding columns converted from their textual storage representation to
// numeric values suitable for aggregate analysis. Cells are string,
// float64, or nil (absent).
type Frame struct {
	Columns []string
	Numeric []bool
	Rows    [][]any
}

// NewFrame builds a frame from stored records. A holding value without a
// numeric interpretation (possible only after a lenient load) fails the
// conversion; the frame is typed or it is not built.
func NewFrame(records []record.Landholder) (*Frame, error) {
	numeric := make([]bool, record.FieldCount)
	for i, f := range record.Fields {
		numeric[i] = f.Kind == record.Hides
	}

	frame := &Frame{
		Columns: record.Names(),
		Numeric: numeric,
		Rows:    make([][]any, 0, len(records)),
	}

	for _, lh := range records {
		row := make([]any, 0, record.FieldCount)
		row = append(row, optCell(lh.Name), optCell(lh.Gender), lh.PASEName, lh.Description)
		holdings := []decimal.Decimal{
			lh.Holder1066, lh.Lord1066, lh.Demesne1086,
			lh.Subtenanted1086, lh.Subtenant1086,
		}
		for _, d := range holdings {
			f, err := d.Float64()
			if err != nil {
				return nil, fmt.Errorf("landholder %q: %w", lh.PASEName, err)
			}
			row = append(row, f)
		}
		row = append(row, optCell(lh.Editor), lh.EditorialStatus)
		frame.Rows = append(frame.Rows, row)
	}

	return frame, nil
}

func optCell(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
