package store

import "errors"

// Storage keys. The store is a flat namespace of string keys to JSON blobs;
// each collection is rewritten wholesale on every mutation of its owning
// component, with no partial updates and no schema versioning.
const (
	KeyIdentity         = "identity"
	KeyOriginalIdentity = "original_identity"
	KeyTheme            = "theme"
	KeyChatLog          = "chat_log"
	KeyNotifications    = "notifications"
	KeyAppointments     = "appointments"
	KeyHealthRecords    = "health_records"
	KeyOrderHistory     = "order_history"
	KeyLabBookings      = "lab_bookings"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
// Callers use it to seed default collections at startup.
var ErrKeyNotFound = errors.New("store: key not found")

// Store is a flat string-to-JSON key-value namespace. Implementations must be
// safe for concurrent use; each value is read or replaced as a whole.
type Store interface {
	// Get unmarshals the value at key into out. Returns ErrKeyNotFound if the
	// key has never been written.
	Get(key string, out interface{}) error

	// Put marshals val and replaces the value at key.
	Put(key string, val interface{}) error

	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(key string) error

	// Close releases the underlying resources.
	Close() error
}
