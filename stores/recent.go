package stores

import (
	"log"
	"sync"

	"github.com/junaidrashid-git/storefront-api/models"
)

// RecentLimit caps the recently-viewed list.
const RecentLimit = 8

// Recent keeps the most recently viewed products, newest first, one entry
// per product ID.
type Recent struct {
	mu    sync.Mutex
	slots SlotStore
	hub   *Hub
	items []models.RecentItem
}

func NewRecent(slots SlotStore, hub *Hub) *Recent {
	return &Recent{
		slots: slots,
		hub:   hub,
		items: restore(slots, SlotRecent, []models.RecentItem(nil)),
	}
}

// AddItem moves the product to the front, evicting the oldest entry once
// the list exceeds RecentLimit.
func (r *Recent) AddItem(item models.RecentItem) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]models.RecentItem, 0, len(r.items)+1)
	kept = append(kept, item)
	for _, it := range r.items {
		if it.ID != item.ID {
			kept = append(kept, it)
		}
	}
	if len(kept) > RecentLimit {
		kept = kept[:RecentLimit]
	}
	r.items = kept
	r.persistLocked()
}

func (r *Recent) Items() []models.RecentItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.RecentItem, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Recent) persistLocked() {
	if err := r.slots.Save(SlotRecent, r.items); err != nil {
		log.Printf("⚠️ Failed to persist recently viewed: %v", err)
	}
	if r.hub != nil {
		snapshot := make([]models.RecentItem, len(r.items))
		copy(snapshot, r.items)
		r.hub.Publish(Event{Store: "recently-viewed", Data: snapshot})
	}
}
