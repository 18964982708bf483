// internal/infrastructure/storage/store.go
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no value exists for an owner/kind pair.
// Callers that implement "absence is not failure" translate this into an
// empty default instead of surfacing it.
var ErrNotFound = errors.New("storage: not found")

// Kind identifies a logical per-user entity in the key-value substrate.
type Kind string

const (
	KindCart        Kind = "cart"
	KindOrders      Kind = "orders"
	KindConsumption Kind = "consumption"
	KindScans       Kind = "scans"
	KindProfile     Kind = "profile"
	KindCredentials Kind = "credentials"
	KindEmailIndex  Kind = "email_index"
)

// Store is the key-value persistence substrate for per-user state. Values
// are JSON documents; ownerID scopes every entry to a single owner (a user
// identifier, or a lowercased email for the email index).
//
// Implementations must provide read-your-writes consistency within a single
// logical session. They do not serialize read-modify-write sequences; that
// is the caller's job (see userlock.Keyed).
type Store interface {
	// Get unmarshals the stored value into dest. Returns ErrNotFound when
	// no value exists.
	Get(ctx context.Context, ownerID string, kind Kind, dest interface{}) error

	// Set marshals value and stores it, replacing any previous value.
	Set(ctx context.Context, ownerID string, kind Kind, value interface{}) error

	// Delete removes the value. Deleting an absent value is not an error.
	Delete(ctx context.Context, ownerID string, kind Kind) error

	// Keys lists the owner identifiers that have a value of the given kind.
	Keys(ctx context.Context, kind Kind) ([]string, error)
}
