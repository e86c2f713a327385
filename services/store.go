package services

import "github.com/pkg/errors"

// ErrKeyNotFound is returned by Get for a key with no value stored.
// Store failures (connection, protocol) are returned as themselves.
var ErrKeyNotFound = errors.New("key not found")

// Store is the runtime key/value store. Learned codes live here, one
// key per preset/button slot, so they survive restarts and are shared
// between service processes.
type Store interface {
	Set(key string, value string) error
	SetWithTTL(key string, value string, ttl uint64) error
	Get(key string) (string, error)
	GetRecursive(prefix string) ([]Node, error)
}

// Node is one stored key/value entry.
type Node struct {
	Key   string
	Value string
}
