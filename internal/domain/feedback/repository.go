package feedback

import "context"

// Repository defines persistence operations for feedback records. The
// store is append-only: there is no update path and no single-record
// delete.
type Repository interface {
	// Insert appends one record and assigns its identifiers. Errors
	// must propagate; a record is either fully written or not at all.
	Insert(ctx context.Context, record *Record) error

	// SelectAll returns every record ordered by timestamp descending.
	// An empty slice is a valid, non-error result.
	SelectAll(ctx context.Context) ([]Record, error)

	// DeleteAll removes every record. Irreversible; only invoked by an
	// explicit, confirmed administrative action.
	DeleteAll(ctx context.Context) error
}
