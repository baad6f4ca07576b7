// Package decimal provides the exact base-10 decimal type used for the
// taxable-value columns. The canonical textual form is the value of record:
// it is what gets written to and read from storage, byte for byte, so
// "1.20" never degrades to "1.2" and no binary float ever enters the
// write or read path.
package decimal

import (
	"database/sql/driver"
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Decimal holds a taxable value in hides.
//
// The numeric interpretation (apd) is carried alongside the text for
// callers that need arithmetic or float conversion (the export frame).
// A Decimal built from non-numeric text via Raw has Valid() == false but
// still round-trips its text through storage unchanged.
type Decimal struct {
	text  string
	num   apd.Decimal
	valid bool
}

// Parse builds a Decimal from its textual form.
// The input text is preserved exactly; parsing only validates it.
func Parse(s string) (Decimal, error) {
	d := Decimal{text: s}
	if _, _, err := d.num.SetString(s); err != nil {
		return Decimal{}, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	d.valid = true
	return d, nil
}

// Raw builds a Decimal that carries arbitrary text without a numeric
// interpretation. Used by the lenient coercion path: a field that fails
// to parse is stored as-is rather than aborting the load.
func Raw(s string) Decimal {
	return Decimal{text: s}
}

// String returns the canonical textual form.
func (d Decimal) String() string {
	return d.text
}

// Valid reports whether the text parsed as a number.
func (d Decimal) Valid() bool {
	return d.valid
}

// Float64 converts the value for aggregate analysis. The conversion is
// one-way; the stored representation is never derived from the float.
func (d Decimal) Float64() (float64, error) {
	if !d.valid {
		return 0, fmt.Errorf("decimal %q has no numeric value", d.text)
	}
	f, err := d.num.Float64()
	if err != nil {
		return 0, fmt.Errorf("convert decimal %q: %w", d.text, err)
	}
	return f, nil
}

// Value implements driver.Valuer. Encodes as the canonical string.
func (d Decimal) Value() (driver.Value, error) {
	return d.text, nil
}

// Scan implements sql.Scanner. Decodes from the stored string; text that
// does not parse (written by a lenient load) is kept raw.
func (d *Decimal) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Decimal", src)
	}
	parsed, err := Parse(s)
	if err != nil {
		*d = Raw(s)
		return nil
	}
	*d = parsed
	return nil
}
