// Package storage is the key-value persistence layer behind the content
// store. Values are opaque text; callers pick the interchange format.
package storage

import "errors"

// ErrStorageUnavailable is returned when the host refuses a durable write
// (read-only file system, full disk, closed database).
var ErrStorageUnavailable = errors.New("storage unavailable")

// Adapter is the get/set/remove contract the content store persists through.
// Keys are written independently: there is no ordering or atomicity across keys.
type Adapter interface {
	Load(key string) (string, bool)
	Save(key, value string) error
	Remove(key string) error
}
