package export

import (
	"context"
	"errors"
	"testing"

	"github.com/benwebber/domesday/pkg/decimal"
	"github.com/benwebber/domesday/pkg/record"
)

type fakeExporter struct{ called bool }

func (f *fakeExporter) Export(ctx context.Context, frame *Frame, path string) error {
	f.called = true
	return nil
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := New("parquet")
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestRegisterAndNew(t *testing.T) {
	fake := &fakeExporter{}
	Register("fake", func() Exporter { return fake })

	e, err := New("fake")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := e.Export(context.Background(), &Frame{}, ""); err != nil {
		t.Fatal(err)
	}
	if !fake.called {
		t.Error("constructor did not return the registered exporter")
	}
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func testRecord(t *testing.T) record.Landholder {
	t.Helper()
	name := "Ælfric"
	return record.Landholder{
		Name:            &name,
		PASEName:        "Aelfric 1",
		Description:     "held land freely",
		Holder1066:      mustDecimal(t, "2.5"),
		Lord1066:        mustDecimal(t, "1"),
		Demesne1086:     mustDecimal(t, "0"),
		Subtenanted1086: mustDecimal(t, "0"),
		Subtenant1086:   mustDecimal(t, "0"),
		EditorialStatus: "confirmed",
	}
}

func TestNewFrame(t *testing.T) {
	frame, err := NewFrame([]record.Landholder{testRecord(t)})
	if err != nil {
		t.Fatalf("NewFrame failed: %v", err)
	}

	if len(frame.Columns) != record.FieldCount {
		t.Fatalf("frame has %d columns", len(frame.Columns))
	}
	if !frame.Numeric[4] || frame.Numeric[3] {
		t.Error("holding columns must be numeric, description must not")
	}

	row := frame.Rows[0]
	if v, ok := row[4].(float64); !ok || v != 2.5 {
		t.Errorf("holder_1066 cell = %v (%T), want float64 2.5", row[4], row[4])
	}
	if row[1] != nil {
		t.Errorf("absent gender should be a nil cell, got %v", row[1])
	}
	if v, ok := row[0].(string); !ok || v != "Ælfric" {
		t.Errorf("name cell = %v", row[0])
	}
}

func TestNewFrameInvalidDecimal(t *testing.T) {
	lh := testRecord(t)
	lh.Holder1066 = decimal.Raw("not-a-number")
	if _, err := NewFrame([]record.Landholder{lh}); err == nil {
		t.Error("frame conversion should fail on a non-numeric holding")
	}
}
