package ports

import (
	"context"

	"statlab/domain/core"
)

// DatasetReaderPort provides read-only access to tabular source data.
// The reader is the external collaborator that loads and parses files;
// the statistics engines only ever see raw observation slices.
type DatasetReaderPort interface {
	// Columns lists the column keys available in the source.
	Columns(ctx context.Context) ([]core.ColumnKey, error)

	// Column returns the raw values of one column in row order.
	Column(ctx context.Context, key core.ColumnKey) ([]interface{}, error)
}
