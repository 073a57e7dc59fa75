package repository

// KeyValueStore is the opaque local persistence the word store is saved into.
// Get reports found=false when the key has never been written.
type KeyValueStore interface {
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
}
