package stores

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	badger "github.com/dgraph-io/badger/v4"
)

// Slot names. One named slot per store; each holds that store's full
// serialized state.
const (
	SlotCart     = "cart-storage"
	SlotWishlist = "wishlist-storage"
	SlotCompare  = "compare-storage"
	SlotRecent   = "recently-viewed-storage"
	SlotDemoMode = "demo-mode-storage"
)

// slotVersion is written into every persisted envelope. A slot with a
// different version is treated the same as a missing slot so old state can
// never be misread after a format change.
const slotVersion = 1

type envelope struct {
	Version int             `json:"v"`
	Data    json.RawMessage `json:"data"`
}

// SlotStore persists whole-store snapshots under stable slot names. Load
// reports found=false for missing slots; decode failures surface as errors
// so callers can fall back to their defaults.
type SlotStore interface {
	Load(slot string, v any) (found bool, err error)
	Save(slot string, v any) error
	Close() error
}

// BadgerSlots keeps slots in an embedded Badger database, one key per slot.
type BadgerSlots struct {
	db *badger.DB
}

// OpenBadgerSlots opens (creating if needed) the slot database at dir.
func OpenBadgerSlots(dir string) (*BadgerSlots, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerSlots{db: db}, nil
}

func (b *BadgerSlots) Load(slot string, v any) (bool, error) {
	var raw []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(slot))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, decodeEnvelope(raw, v)
}

func (b *BadgerSlots) Save(slot string, v any) error {
	raw, err := encodeEnvelope(v)
	if err != nil {
		return err
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(slot), raw)
	})
}

func (b *BadgerSlots) Close() error {
	return b.db.Close()
}

// MemorySlots is an in-memory SlotStore for tests and ephemeral runs.
type MemorySlots struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemorySlots() *MemorySlots {
	return &MemorySlots{data: make(map[string][]byte)}
}

func (m *MemorySlots) Load(slot string, v any) (bool, error) {
	m.mu.Lock()
	raw, ok := m.data[slot]
	m.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, decodeEnvelope(raw, v)
}

func (m *MemorySlots) Save(slot string, v any) error {
	raw, err := encodeEnvelope(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[slot] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemorySlots) Close() error { return nil }

// Seed writes a raw payload into a slot, bypassing the envelope. Tests use
// it to simulate corrupt or legacy persisted data.
func (m *MemorySlots) Seed(slot string, raw []byte) {
	m.mu.Lock()
	m.data[slot] = raw
	m.mu.Unlock()
}

func encodeEnvelope(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Version: slotVersion, Data: data})
}

func decodeEnvelope(raw []byte, v any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return err
	}
	if env.Version != slotVersion {
		return errors.New("unknown slot version")
	}
	return json.Unmarshal(env.Data, v)
}

// restore loads a slot, falling back to def when the slot is missing or
// unreadable. Persistence problems are local recoveries, never fatal.
func restore[T any](slots SlotStore, slot string, def T) T {
	v := def
	found, err := slots.Load(slot, &v)
	if err != nil {
		log.Printf("⚠️ Slot %q unreadable, starting from defaults: %v", slot, err)
		return def
	}
	if !found {
		return def
	}
	return v
}
