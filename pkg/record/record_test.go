package record

import (
	"errors"
	"testing"
)

func TestFromRow(t *testing.T) {
	row := []string{
		"Ælfric", "M", "Aelfric 1", `held land, "freely"`,
		"2.5", "1", "0", "0", "0", "Jones", "confirmed",
	}

	lh, err := FromRow(row, Options{})
	if err != nil {
		t.Fatalf("FromRow failed: %v", err)
	}

	if lh.Name == nil || *lh.Name != "Ælfric" {
		t.Errorf("Name = %v, want Ælfric", lh.Name)
	}
	if lh.PASEName != "Aelfric 1" {
		t.Errorf("PASEName = %q", lh.PASEName)
	}
	if lh.Description != "held land, freely" {
		t.Errorf("Description = %q, want cleaned quotes", lh.Description)
	}
	if lh.Holder1066.String() != "2.5" {
		t.Errorf("Holder1066 = %q, want 2.5", lh.Holder1066.String())
	}
	if !lh.Holder1066.Valid() {
		t.Error("Holder1066 should parse as a number")
	}
	if lh.Editor == nil || *lh.Editor != "Jones" {
		t.Errorf("Editor = %v, want Jones", lh.Editor)
	}
	if lh.EditorialStatus != "confirmed" {
		t.Errorf("EditorialStatus = %q", lh.EditorialStatus)
	}
}

func TestFromRowNullSentinels(t *testing.T) {
	row := []string{
		"null", "Undefined", "Aelfric 2", "description",
		"0", "0", "0", "0", "0", "", "unchecked",
	}

	lh, err := FromRow(row, Options{})
	if err != nil {
		t.Fatalf("FromRow failed: %v", err)
	}
	if lh.Name != nil {
		t.Errorf("Name = %q, want absent", *lh.Name)
	}
	if lh.Gender != nil {
		t.Errorf("Gender = %q, want absent", *lh.Gender)
	}
	if lh.Editor != nil {
		t.Errorf("Editor = %q, want absent", *lh.Editor)
	}
}

func TestFromRowCollapsesKeyWhitespace(t *testing.T) {
	row := []string{
		"", "", "  Aelfric   2 ", "d",
		"0", "0", "0", "0", "0", "", "s",
	}
	lh, err := FromRow(row, Options{})
	if err != nil {
		t.Fatalf("FromRow failed: %v", err)
	}
	if lh.PASEName != "Aelfric 2" {
		t.Errorf("PASEName = %q, want single-spaced", lh.PASEName)
	}
}

func TestFromRowRepairs(t *testing.T) {
	// 13-field row: stray commas in the description.
	row := []string{
		"Wulfric", "M", "Wulfric 280",
		"held Tardebigge", " Chaddesley", " and Alton",
		"7.5", "0", "0", "0", "0", "Baxter", "confirmed",
	}
	lh, err := FromRow(row, Options{})
	if err != nil {
		t.Fatalf("FromRow failed: %v", err)
	}
	if lh.Description != "held Tardebigge, Chaddesley, and Alton" {
		t.Errorf("Description = %q", lh.Description)
	}
	if lh.Holder1066.String() != "7.5" {
		t.Errorf("Holder1066 = %q", lh.Holder1066.String())
	}
}

func TestFromRowLenientCoercion(t *testing.T) {
	row := []string{
		"", "", "Aelfric 3", "d",
		"not-a-number", "0", "0", "0", "0", "", "s",
	}

	// Default: the raw value is carried as-is.
	lh, err := FromRow(row, Options{})
	if err != nil {
		t.Fatalf("lenient FromRow failed: %v", err)
	}
	if lh.Holder1066.Valid() {
		t.Error("invalid decimal should not report Valid")
	}
	if lh.Holder1066.String() != "not-a-number" {
		t.Errorf("raw value changed: %q", lh.Holder1066.String())
	}

	// Strict mode: coercion failure is an error.
	_, err = FromRow(row, Options{StrictTypes: true})
	var ce *CoercionError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CoercionError, got %v", err)
	}
	if ce.Field != "holder_1066" {
		t.Errorf("CoercionError.Field = %q", ce.Field)
	}
}

func TestFromRowMalformed(t *testing.T) {
	_, err := FromRow([]string{"only", "four", "fields", "here"}, Options{})
	if !errors.Is(err, ErrMalformedRow) {
		t.Errorf("expected ErrMalformedRow, got %v", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != FieldCount {
		t.Fatalf("Names() returned %d entries", len(names))
	}
	if names[2] != "pase_name" || names[10] != "editorial_status" {
		t.Errorf("unexpected field order: %v", names)
	}
}
