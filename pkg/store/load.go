package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/benwebber/domesday/pkg/record"
)

const insertSQL = `
INSERT OR REPLACE INTO landholders (
    name, gender, pase_name, description,
    holder_1066, lord_1066, demesne_1086, subtenanted_1086, subtenant_1086,
    editor, editorial_status
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const rebuildFTSSQL = `INSERT INTO landholders_fts(landholders_fts) VALUES ('rebuild')`

// Report summarizes one bulk load.
type Report struct {
	Rows     int           // records loaded
	Repaired int           // rows that needed description repair
	Checksum string        // xxh3 of the raw input bytes, hex
	Duration time.Duration // wall time of the whole load
}

// LoadCSV imports landholder records from r.
//
// Every row is repaired and parsed, then persisted in a single transaction
// with replace-on-conflict semantics on pase_name: reloading an existing
// key overwrites the stored row. The search index is rebuilt inside the
// same transaction, so a committed load always leaves the index in sync.
// Any row failure rolls back the whole batch; the store keeps its prior
// committed state.
func (s *Store) LoadCSV(ctx context.Context, r io.Reader) (*Report, error) {
	start := time.Now()

	hasher := xxh3.New()
	reader := csv.NewReader(io.TeeReader(r, hasher))
	// The repair heuristic needs variable-width rows and tolerates the
	// source's unescaped quoting.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	report := &Report{}
	for line := 1; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		if len(row) != record.FieldCount {
			report.Repaired++
		}

		lh, err := record.FromRow(row, s.opts)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		if _, err := stmt.ExecContext(ctx,
			lh.Name, lh.Gender, lh.PASEName, lh.Description,
			lh.Holder1066, lh.Lord1066, lh.Demesne1086,
			lh.Subtenanted1086, lh.Subtenant1086,
			lh.Editor, lh.EditorialStatus,
		); err != nil {
			return nil, fmt.Errorf("line %d: failed to insert %q: %w", line, lh.PASEName, err)
		}
		report.Rows++
	}

	if _, err := tx.ExecContext(ctx, rebuildFTSSQL); err != nil {
		return nil, fmt.Errorf("failed to rebuild search index: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit load: %w", err)
	}

	report.Checksum = fmt.Sprintf("%016x", hasher.Sum64())
	report.Duration = time.Since(start)

	s.log.Info().
		Int("rows", report.Rows).
		Int("repaired", report.Repaired).
		Str("checksum", report.Checksum).
		Dur("duration", report.Duration).
		Msg("load committed")

	return report, nil
}
