package audit

import "context"

type Repository interface {
	// Append inserts one entry. The log is append-only, so this is the only
	// mutation operation exposed.
	Append(ctx context.Context, e *Entry) error

	// ListByApplicationID returns the full trail for one application,
	// ordered oldest-first.
	ListByApplicationID(ctx context.Context, applicationID string) ([]Entry, error)
}
