package receiptcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"chainproof/event"
	"chainproof/storage"
)

// ErrReceiptNotFound is returned when a requested
// receipt is not present in the cache.
var ErrReceiptNotFound = errors.New("receipt not found")

// Cache provides thread-safe, demo-time persistence of decoded
// transaction receipts, keyed by a caller-chosen identifier
// (the demo uses the fixture file's base name). It
// sits outside the proof core: the core itself never touches
// storage.
type Cache struct {
	db store
	mu sync.RWMutex
}

// store is what a Cache needs from its backing key-val store:
// single-item access plus batched writes.
type store interface {
	storage.KeyValStore
	storage.Batcher
}

// New creates a Cache backed by the given key-val store.
func New(db store) *Cache {
	return &Cache{db: db}
}

// Close closes the underlying key-val store.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get retrieves the receipt stored under id.
func (c *Cache) Get(id string) (event.TransactionReceipt, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	encoded, err := c.db.Get(receiptKey(id))
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return event.TransactionReceipt{}, ErrReceiptNotFound
		}
		return event.TransactionReceipt{}, fmt.Errorf("failed to get receipt: %w", err)
	}

	var r event.TransactionReceipt
	if err := json.Unmarshal(encoded, &r); err != nil {
		return event.TransactionReceipt{}, fmt.Errorf("failed to decode receipt: %w", err)
	}

	return r, nil
}

// Put stores the receipt under id, overwriting any
// previous entry.
func (c *Cache) Put(id string, r event.TransactionReceipt) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	encoded, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode receipt: %w", err)
	}

	if err := c.db.Put(receiptKey(id), encoded); err != nil {
		return fmt.Errorf("failed to put receipt: %w", err)
	}

	return nil
}

// PutAll stores multiple receipts in a single batch.
func (c *Cache) PutAll(receipts map[string]event.TransactionReceipt) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	batch := c.db.NewBatchWithSize(len(receipts))
	for id, r := range receipts {
		encoded, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to encode receipt: %w", err)
		}
		if err := batch.Put(receiptKey(id), encoded); err != nil {
			return fmt.Errorf("failed to put receipt in batch: %w", err)
		}
	}

	return batch.Write()
}
