package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/benwebber/domesday/pkg/record"
)

const selectAllSQL = `
SELECT name, gender, pase_name, description,
       holder_1066, lord_1066, demesne_1086, subtenanted_1086, subtenant_1086,
       editor, editorial_status
FROM landholders
ORDER BY pase_name`

// All reads back every stored landholder in key order. The decimal codec
// runs on scan, so textual precision survives the read path too.
func (s *Store) All(ctx context.Context) ([]record.Landholder, error) {
	rows, err := s.db.QueryContext(ctx, selectAllSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query landholders: %w", err)
	}
	defer rows.Close()

	var records []record.Landholder
	for rows.Next() {
		var lh record.Landholder
		var name, gender, editor sql.NullString
		if err := rows.Scan(
			&name, &gender, &lh.PASEName, &lh.Description,
			&lh.Holder1066, &lh.Lord1066, &lh.Demesne1086,
			&lh.Subtenanted1086, &lh.Subtenant1086,
			&editor, &lh.EditorialStatus,
		); err != nil {
			return nil, fmt.Errorf("failed to scan landholder: %w", err)
		}
		if name.Valid {
			lh.Name = &name.String
		}
		if gender.Valid {
			lh.Gender = &gender.String
		}
		if editor.Valid {
			lh.Editor = &editor.String
		}
		records = append(records, lh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading landholders: %w", err)
	}
	return records, nil
}
