package storage

// Store is the durable key-value medium behind the three game documents.
// Get reports absence with a false second return instead of an error;
// errors are reserved for the medium itself failing.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}
