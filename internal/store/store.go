package store

import "context"

// Row is one persisted record keyed by header column name.
type Row map[string]string

// Store is the append-only tabular backend holding every posting recorded
// across runs. ReadAll returns data rows only, never the header row.
// Existing rows are never edited or deleted through this interface.
type Store interface {
	ReadAll(ctx context.Context) ([]Row, error)
	AppendRow(ctx context.Context, values []string) error
}
