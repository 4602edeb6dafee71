package entry

import (
	"context"

	"github.com/google/uuid"
)

// Store is the persistence collaborator consumed by the query engine. The
// engine never assumes a specific storage technology; it only borrows entry
// references for the duration of a request. Implementations must return
// consistent snapshots for concurrent reads and keep single-entry writes
// atomic.
type Store interface {
	// FindAll returns every entry of the model in insertion order.
	FindAll(ctx context.Context, model string) ([]*Entry, error)
	// Count reports how many entries of the model exist.
	Count(ctx context.Context, model string) (int, error)
	// GetByID returns the entry or a NotFoundError.
	GetByID(ctx context.Context, id uuid.UUID) (*Entry, error)
	// Insert persists the record, assigning its ID when unset.
	Insert(ctx context.Context, record *Entry) (*Entry, error)
	// Delete removes the entry or returns a NotFoundError.
	Delete(ctx context.Context, id uuid.UUID) error
}
