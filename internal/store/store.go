package store

// KeyLastSearch holds the most recently committed search term
const KeyLastSearch = "last_search"

// Store is a persistent string key/value store.
// Get returns "" without an error when the key is absent.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Close() error
}
