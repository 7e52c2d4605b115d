package stores

import (
	"testing"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/stretchr/testify/assert"
)

func wishlistItem(id string) models.WishlistItem {
	return models.WishlistItem{ID: id, Title: "Product " + id, Price: 10}
}

func TestWishlistAddDeduplicates(t *testing.T) {
	wishlist := NewWishlist(NewMemorySlots(), nil)

	wishlist.AddItem(wishlistItem("a"))
	wishlist.AddItem(wishlistItem("a"))
	assert.Len(t, wishlist.Items(), 1)
}

func TestWishlistToggleRoundTrip(t *testing.T) {
	wishlist := NewWishlist(NewMemorySlots(), nil)
	wishlist.AddItem(wishlistItem("a"))
	before := wishlist.Items()

	// Toggling the same item twice restores the original state.
	wishlist.Toggle(wishlistItem("b"))
	assert.True(t, wishlist.Contains("b"))
	wishlist.Toggle(wishlistItem("b"))
	assert.False(t, wishlist.Contains("b"))

	assert.Equal(t, before, wishlist.Items())
}

func TestWishlistRemoveMissingIsNoop(t *testing.T) {
	wishlist := NewWishlist(NewMemorySlots(), nil)
	wishlist.AddItem(wishlistItem("a"))
	wishlist.RemoveItem("missing")
	assert.Len(t, wishlist.Items(), 1)
}

func TestWishlistHasNoCap(t *testing.T) {
	wishlist := NewWishlist(NewMemorySlots(), nil)
	for i := 0; i < 50; i++ {
		wishlist.AddItem(models.WishlistItem{ID: string(rune('A' + i))})
	}
	assert.Len(t, wishlist.Items(), 50)
}

func TestWishlistSurvivesRestart(t *testing.T) {
	slots := NewMemorySlots()
	wishlist := NewWishlist(slots, nil)
	wishlist.AddItem(wishlistItem("a"))

	reloaded := NewWishlist(slots, nil)
	assert.True(t, reloaded.Contains("a"))
}
