package stores

import (
	"errors"
	"log"
	"sync"

	"github.com/junaidrashid-git/storefront-api/models"
)

// CompareLimit is the most products that can be compared side by side.
const CompareLimit = 3

// ErrCompareFull signals that the compare list is at capacity and the new
// product was not added.
var ErrCompareFull = errors.New("compare list is full")

// Compare holds up to CompareLimit products, one entry per product ID.
type Compare struct {
	mu    sync.Mutex
	slots SlotStore
	hub   *Hub
	items []models.CompareItem
}

func NewCompare(slots SlotStore, hub *Hub) *Compare {
	return &Compare{
		slots: slots,
		hub:   hub,
		items: restore(slots, SlotCompare, []models.CompareItem(nil)),
	}
}

// AddItem adds the item. A product already present is a silent no-op and
// never counts against the cap; a new product at the cap is rejected with
// ErrCompareFull and the list stays unchanged.
func (c *Compare) AddItem(item models.CompareItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if it.ID == item.ID {
			return nil
		}
	}
	if len(c.items) >= CompareLimit {
		return ErrCompareFull
	}
	c.items = append(c.items, item)
	c.persistLocked()
	return nil
}

// RemoveItem deletes by product ID; absent IDs are a no-op.
func (c *Compare) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persistLocked()
			return
		}
	}
}

func (c *Compare) Contains(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Toggle adds the item if absent, removes it if present. The add may fail
// with ErrCompareFull.
func (c *Compare) Toggle(item models.CompareItem) error {
	if c.Contains(item.ID) {
		c.RemoveItem(item.ID)
		return nil
	}
	return c.AddItem(item)
}

// Clear empties the compare list.
func (c *Compare) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.persistLocked()
}

func (c *Compare) Items() []models.CompareItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CompareItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Compare) persistLocked() {
	if err := c.slots.Save(SlotCompare, c.items); err != nil {
		log.Printf("⚠️ Failed to persist compare list: %v", err)
	}
	if c.hub != nil {
		snapshot := make([]models.CompareItem, len(c.items))
		copy(snapshot, c.items)
		c.hub.Publish(Event{Store: "compare", Data: snapshot})
	}
}
