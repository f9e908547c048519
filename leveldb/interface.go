package leveldb

// KeyValueReader reads from a key-value store
type KeyValueReader interface {
	Has(key []byte) (bool, error)
	Get(key []byte) ([]byte, error)
}

// KeyValueWriter writes to a key-value store
type KeyValueWriter interface {
	Put(key []byte, value []byte) error
	Delete(key []byte) error
}

// Iterator walks keys in binary-alphabetical order. It must be released after use.
type Iterator interface {
	Next() bool
	Error() error
	Key() []byte
	Value() []byte
	Release()
}

// Batch buffers writes until Write applies them at once
type Batch interface {
	KeyValueWriter
	Len() int
	Write() error
}

// KeyValueStore is the storage used by the wallet store
type KeyValueStore interface {
	KeyValueReader
	KeyValueWriter
	NewBatch() Batch
	NewIterator(prefix []byte, start []byte) Iterator
	Close() error
}
