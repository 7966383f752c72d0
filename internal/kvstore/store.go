// Package kvstore provides the persisted key-value store behind the
// application's durable state. Values are opaque strings (the services
// store JSON-serialized collections); the store itself never inspects
// them.
package kvstore

import "errors"

// ErrKeyNotFound is returned by Get when the key has never been written.
// Callers treat a missing key as an empty collection, never as a failure.
var ErrKeyNotFound = errors.New("key not found")

// Store is the persistence contract. Implementations must make SetMany
// atomic: either every pair is durably written or none is.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	SetMany(pairs map[string]string) error
	Close() error
}
