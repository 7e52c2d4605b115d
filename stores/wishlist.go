package stores

import (
	"log"
	"sync"

	"github.com/junaidrashid-git/storefront-api/models"
)

// Wishlist holds at most one entry per product ID, with no size limit.
type Wishlist struct {
	mu    sync.Mutex
	slots SlotStore
	hub   *Hub
	items []models.WishlistItem
}

func NewWishlist(slots SlotStore, hub *Hub) *Wishlist {
	return &Wishlist{
		slots: slots,
		hub:   hub,
		items: restore(slots, SlotWishlist, []models.WishlistItem(nil)),
	}
}

// AddItem appends the item unless its product is already present.
func (w *Wishlist) AddItem(item models.WishlistItem) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, it := range w.items {
		if it.ID == item.ID {
			return
		}
	}
	w.items = append(w.items, item)
	w.persistLocked()
}

// RemoveItem deletes by product ID; absent IDs are a no-op.
func (w *Wishlist) RemoveItem(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, it := range w.items {
		if it.ID == id {
			w.items = append(w.items[:i], w.items[i+1:]...)
			w.persistLocked()
			return
		}
	}
}

func (w *Wishlist) Contains(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, it := range w.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Toggle adds the item if absent, removes it if present.
func (w *Wishlist) Toggle(item models.WishlistItem) {
	if w.Contains(item.ID) {
		w.RemoveItem(item.ID)
	} else {
		w.AddItem(item)
	}
}

func (w *Wishlist) Items() []models.WishlistItem {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]models.WishlistItem, len(w.items))
	copy(out, w.items)
	return out
}

func (w *Wishlist) persistLocked() {
	if err := w.slots.Save(SlotWishlist, w.items); err != nil {
		log.Printf("⚠️ Failed to persist wishlist: %v", err)
	}
	if w.hub != nil {
		snapshot := make([]models.WishlistItem, len(w.items))
		copy(snapshot, w.items)
		w.hub.Publish(Event{Store: "wishlist", Data: snapshot})
	}
}
