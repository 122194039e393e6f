package core

import "context"

// Repository defines the contract for storing and retrieving documents.
// Adhering to this interface keeps the section/item logic independent of the
// underlying storage mechanism (filesystem today, anything else tomorrow).
//
// Implementations own timestamping and pre-overwrite backups; the callers
// never cache Content across calls, every operation re-reads it fresh.
type Repository interface {
	// Save persists a document. It creates if not exists, or updates if it
	// does, stamping Updated (and Created on first write).
	Save(ctx context.Context, doc Document) error

	// Get retrieves a document by its ID. A missing file is reported as a
	// NotFoundError; every other I/O failure passes through unchanged.
	Get(ctx context.Context, id string) (Document, error)

	// List returns documents whose IDs match the glob pattern. An empty
	// pattern matches everything.
	List(ctx context.Context, pattern string) ([]Document, error)

	// Delete removes a document by its ID.
	Delete(ctx context.Context, id string) error

	// Initialize ensures the underlying storage is ready (e.g. create the
	// vault directory).
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for repositories that can report external
// changes to the vault.
type Watchable interface {
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
