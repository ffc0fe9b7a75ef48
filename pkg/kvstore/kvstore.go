// Package kvstore is the storage collaborator for the storefront: a plain
// key-value contract over JSON-serializable records. Writes are whole-value
// and last-write-wins; there is no locking, versioning or transactional
// guarantee. Concurrent writers to the same key clobber each other, which
// is acceptable for single-user, single-session flows and is a documented
// limitation, not something the implementations try to strengthen.
package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no record exists at the key. It is
// an expected, recoverable outcome of a lookup, not a failure.
var ErrKeyNotFound = errors.New("key not found")

type Store interface {
	Put(ctx context.Context, key string, value any) error
	Get(ctx context.Context, key string, out any) error
	Ping(ctx context.Context) error
}

// Key builders for the record families the storefront persists.

func BookingKey(reference string) string {
	return "booking_" + reference
}

func InquiryKey(author, password string) string {
	return "inquiry_" + author + "_" + password
}

func CancellationKey(reference string) string {
	return "cancellation_" + reference
}
