// Package storage provides the durable key-value store the state stores
// persist to: named JSON blobs, standing in for browser local storage.
package storage

import "errors"

// ErrNotFound is returned by Get when no blob exists under the key.
var ErrNotFound = errors.New("storage: key not found")

// Store maps blob names to raw JSON. Writes fully succeed or leave the
// prior value untouched.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
