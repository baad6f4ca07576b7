package record

import "strings"

// Pseudo-null sentinels, matched case-insensitively. The dataset uses all
// three interchangeably for "no value".
var nullSentinels = map[string]bool{
	"":          true,
	"null":      true,
	"undefined": true,
}

// cleanNull maps pseudo-null sentinels to absent. Any other value passes
// through unchanged, case included.
func cleanNull(raw string) (string, bool) {
	if nullSentinels[strings.ToLower(raw)] {
		return "", true
	}
	return raw, false
}

// cleanDescription drops the straight double quotes left over from CSV
// quoting (after repair they can sit mid-field, not just at the ends),
// trims surrounding whitespace, and normalizes typographic single quotes
// to plain apostrophes. The source mixes typesetting conventions;
// downstream text matching must not be quote-sensitive.
func cleanDescription(raw string) (string, bool) {
	s := strings.ReplaceAll(raw, `"`, "")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "‘", "'")
	s = strings.ReplaceAll(s, "’", "'")
	return s, false
}

// collapseWhitespace rejoins the value on single spaces. pase_name is the
// natural key; inconsistent spacing would fragment the same person across
// rows.
func collapseWhitespace(raw string) (string, bool) {
	return strings.Join(strings.Fields(raw), " "), false
}
