package record

import (
	"fmt"

	"github.com/benwebber/domesday/pkg/decimal"
)

// Landholder is one row of the dataset: a named or anonymous 11th-century
// land holder and their attested holdings. Decimal fields are the total
// taxable value of estates held in whole or part, in hides.
//
// A Landholder is built once per CSV line (or per stored row on read-back)
// and never mutated afterwards; replacement is whole-row.
type Landholder struct {
	Name            *string
	Gender          *string
	PASEName        string
	Description     string
	Holder1066      decimal.Decimal
	Lord1066        decimal.Decimal
	Demesne1086     decimal.Decimal
	Subtenanted1086 decimal.Decimal
	Subtenant1086   decimal.Decimal
	Editor          *string
	EditorialStatus string
}

// Options controls record construction.
type Options struct {
	// StrictTypes turns decimal coercion failures into errors. The
	// reference behavior is lenient: a value that fails to parse is
	// carried as raw text and stored as-is. Leave false for parity with
	// previously loaded data.
	StrictTypes bool
}

// CoercionError reports a field value that failed strict type coercion.
type CoercionError struct {
	Field string
	Value string
	Err   error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("field %s: cannot coerce %q: %v", e.Field, e.Value, e.Err)
}

func (e *CoercionError) Unwrap() error { return e.Err }

// FromRow builds a Landholder from a raw CSV row: repair to the declared
// width, clean each field per its declared rule, then coerce to the
// declared type.
func FromRow(raw []string, opts Options) (Landholder, error) {
	row, err := Repair(raw)
	if err != nil {
		return Landholder{}, err
	}

	var values [FieldCount]string
	var absent [FieldCount]bool
	for i, def := range Fields {
		v := row[i]
		if def.Clean != nil {
			v, absent[i] = def.Clean(v)
		}
		values[i] = v
	}

	var holdings [5]decimal.Decimal
	for i, pos := range [5]int{4, 5, 6, 7, 8} {
		d, err := decimal.Parse(values[pos])
		if err != nil {
			if opts.StrictTypes {
				return Landholder{}, &CoercionError{Field: Fields[pos].Name, Value: values[pos], Err: err}
			}
			d = decimal.Raw(values[pos])
		}
		holdings[i] = d
	}

	return Landholder{
		Name:            optional(values[0], absent[0]),
		Gender:          optional(values[1], absent[1]),
		PASEName:        values[2],
		Description:     values[3],
		Holder1066:      holdings[0],
		Lord1066:        holdings[1],
		Demesne1086:     holdings[2],
		Subtenanted1086: holdings[3],
		Subtenant1086:   holdings[4],
		Editor:          optional(values[9], absent[9]),
		EditorialStatus: values[10],
	}, nil
}

func optional(v string, absent bool) *string {
	if absent {
		return nil
	}
	return &v
}
