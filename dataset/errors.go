package dataset

import "fmt"

// SchemaError reports a required column missing from the merged dataset.
// Anything else irregular in the data (bad cells, unknown columns) passes
// through silently; only column-level absence aborts a run.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("required column %q not found", e.Column)
}
