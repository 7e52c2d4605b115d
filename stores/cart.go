package stores

import (
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/storefront-api/models"
)

const taxRate = 0.10

// CartLineBase is the product snapshot used to open a new cart line.
type CartLineBase struct {
	ProductID string            `json:"productId"`
	Title     string            `json:"title"`
	Slug      string            `json:"slug"`
	Image     string            `json:"image"`
	Price     float64           `json:"price"`
	Variant   map[string]string `json:"variant,omitempty"`
}

// Cart owns the cart line list. At most one line exists per
// (product, variant-signature) pair; adding an existing pair increments its
// quantity. Every mutation is persisted to the cart slot and announced on
// the hub.
type Cart struct {
	mu    sync.Mutex
	slots SlotStore
	hub   *Hub
	lines []models.CartLineItem
}

func NewCart(slots SlotStore, hub *Hub) *Cart {
	return &Cart{
		slots: slots,
		hub:   hub,
		lines: restore(slots, SlotCart, []models.CartLineItem(nil)),
	}
}

// variantSignature reduces a variant selection to a canonical string so two
// selections compare equal regardless of map iteration order.
func variantSignature(variant map[string]string) string {
	if len(variant) == 0 {
		return ""
	}
	keys := make([]string, 0, len(variant))
	for k := range variant {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + variant[k]
	}
	return strings.Join(parts, "|")
}

// AddItem adds qty of the given product+variant to the cart. Quantities
// below 1 are clamped to 1 for new lines; an existing line just has its
// quantity increased. Returns the affected line.
func (c *Cart) AddItem(base CartLineBase, qty int) models.CartLineItem {
	if qty < 1 {
		qty = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	sig := variantSignature(base.Variant)
	for i, line := range c.lines {
		if line.ProductID == base.ProductID && variantSignature(line.Variant) == sig {
			c.lines[i].Qty += qty
			c.persistLocked()
			return c.lines[i]
		}
	}

	line := models.CartLineItem{
		ID:        uuid.NewString(),
		ProductID: base.ProductID,
		Title:     base.Title,
		Slug:      base.Slug,
		Image:     base.Image,
		Price:     base.Price,
		Variant:   base.Variant,
		Qty:       qty,
	}
	c.lines = append(c.lines, line)
	c.persistLocked()
	return line
}

// RemoveItem deletes a line by ID. Removing an absent line is a no-op.
func (c *Cart) RemoveItem(lineID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, line := range c.lines {
		if line.ID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.persistLocked()
			return
		}
	}
}

// UpdateQty sets a line's quantity. A quantity of zero or less removes the
// line.
func (c *Cart) UpdateQty(lineID string, qty int) {
	if qty <= 0 {
		c.RemoveItem(lineID)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, line := range c.lines {
		if line.ID == lineID {
			c.lines[i].Qty = qty
			c.persistLocked()
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.persistLocked()
}

// Items returns a copy of the current lines.
func (c *Cart) Items() []models.CartLineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartLineItem, len(c.lines))
	copy(out, c.lines)
	return out
}

// Subtotal is recomputed from the live line list on every call.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var sum float64
	for _, line := range c.lines {
		sum += line.Price * float64(line.Qty)
	}
	return sum
}

func (c *Cart) Tax() float64 {
	return c.Subtotal() * taxRate
}

func (c *Cart) Total() float64 {
	sub := c.Subtotal()
	return sub + sub*taxRate
}

func (c *Cart) persistLocked() {
	if err := c.slots.Save(SlotCart, c.lines); err != nil {
		log.Printf("⚠️ Failed to persist cart: %v", err)
	}
	if c.hub != nil {
		snapshot := make([]models.CartLineItem, len(c.lines))
		copy(snapshot, c.lines)
		c.hub.Publish(Event{Store: "cart", Data: snapshot})
	}
}
