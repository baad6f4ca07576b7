// Package record models one row of the PASE Domesday landholders extract:
// the fixed 11-field record, the per-field cleaning rules, and the repair
// heuristic for rows whose description contains unescaped commas.
package record

// FieldCount is the fixed width of a landholder row.
const FieldCount = 11

// Kind classifies a field for cleaning and coercion.
type Kind int

const (
	// Text is required free text.
	Text Kind = iota

	// OptionalText maps pseudo-null sentinels to an absent value.
	OptionalText

	// Hides is an exact decimal taxable value.
	Hides
)

// CleanFunc normalizes a raw field value. absent is true when the value
// maps to SQL NULL (pseudo-null sentinels on optional fields).
type CleanFunc func(raw string) (value string, absent bool)

// FieldDef describes one column of the extract.
type FieldDef struct {
	Name  string
	Kind  Kind
	Clean CleanFunc // nil = pass through unchanged
}

// Fields is the declared field order of the extract. The cleaner for each
// field is bound here, at compile time, so a missing or renamed handler is
// a build error rather than a silently skipped lookup.
var Fields = [FieldCount]FieldDef{
	{Name: "name", Kind: OptionalText, Clean: cleanNull},
	{Name: "gender", Kind: OptionalText, Clean: cleanNull},
	{Name: "pase_name", Kind: Text, Clean: collapseWhitespace},
	{Name: "description", Kind: Text, Clean: cleanDescription},
	{Name: "holder_1066", Kind: Hides},
	{Name: "lord_1066", Kind: Hides},
	{Name: "demesne_1086", Kind: Hides},
	{Name: "subtenanted_1086", Kind: Hides},
	{Name: "subtenant_1086", Kind: Hides},
	{Name: "editor", Kind: OptionalText, Clean: cleanNull},
	{Name: "editorial_status", Kind: Text},
}

// Names returns the column names in declared order.
func Names() []string {
	names := make([]string, FieldCount)
	for i, f := range Fields {
		names[i] = f.Name
	}
	return names
}
