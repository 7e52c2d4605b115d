package stores

import (
	"log"
	"sync"
)

type flagState struct {
	Enabled bool `json:"enabled"`
}

// Flags is the demo-mode feature flag store. It defaults to disabled when
// nothing (or nothing readable) is persisted.
type Flags struct {
	mu    sync.Mutex
	slots SlotStore
	hub   *Hub
	state flagState
}

func NewFlags(slots SlotStore, hub *Hub) *Flags {
	return &Flags{
		slots: slots,
		hub:   hub,
		state: restore(slots, SlotDemoMode, flagState{}),
	}
}

func (f *Flags) Enabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Enabled
}

func (f *Flags) SetEnabled(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Enabled = enabled
	f.persistLocked()
}

// Toggle flips demo mode and returns the new value.
func (f *Flags) Toggle() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Enabled = !f.state.Enabled
	f.persistLocked()
	return f.state.Enabled
}

func (f *Flags) persistLocked() {
	if err := f.slots.Save(SlotDemoMode, f.state); err != nil {
		log.Printf("⚠️ Failed to persist demo mode: %v", err)
	}
	if f.hub != nil {
		f.hub.Publish(Event{Store: "demo-mode", Data: f.state})
	}
}
