// Package blob provides durable whole-snapshot records. A blob is
// committed atomically: readers either see the previous snapshot or
// the new one, never a partial write.
package blob

import "context"

// Blob is one durable snapshot record.
type Blob interface {
	// Load returns the last committed snapshot. ok is false when the
	// blob has never been written.
	Load(ctx context.Context) (data []byte, ok bool, err error)

	// Store commits a full replacement snapshot before returning.
	Store(ctx context.Context, data []byte) error
}
