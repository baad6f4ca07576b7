package record

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedRow marks a row that cannot be reduced to FieldCount fields
// even after repair. It aborts the whole load; a row outside the known
// repair pattern is a data-integrity problem, not something to skip.
var ErrMalformedRow = errors.New("malformed row")

// delimiter is the field separator of the source extract.
const delimiter = ","

// Repair returns a row of exactly FieldCount fields.
//
// The description field is not always delimiter-escaped in the source
// (Thorkil 92 and Wulfric 280 are the known cases). When it contains stray
// commas, naive splitting yields more than 11 fields with the excess
// between the leading three and the trailing seven. Those middle fields
// are fragments of one description; rejoining them with the delimiter
// restores the original text, since only boundary information was lost.
// Rows that already have 11 fields pass through unchanged (the single
// middle field rejoins to itself).
func Repair(row []string) ([]string, error) {
	if len(row) >= FieldCount {
		description := strings.Join(row[3:len(row)-7], delimiter)
		repaired := make([]string, 0, FieldCount)
		repaired = append(repaired, row[:3]...)
		repaired = append(repaired, description)
		repaired = append(repaired, row[len(row)-7:]...)
		row = repaired
	}
	if len(row) != FieldCount {
		return nil, fmt.Errorf("%w: %d fields, want %d", ErrMalformedRow, len(row), FieldCount)
	}
	return row, nil
}
