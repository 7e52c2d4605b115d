package stores

import (
	"fmt"
	"testing"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recentItem(id string) models.RecentItem {
	return models.RecentItem{ID: id, Title: "Product " + id}
}

func TestRecentEvictsOldestBeyondLimit(t *testing.T) {
	recent := NewRecent(NewMemorySlots(), nil)

	for i := 1; i <= 9; i++ {
		recent.AddItem(recentItem(fmt.Sprintf("p%d", i)))
	}

	items := recent.Items()
	require.Len(t, items, RecentLimit)
	assert.Equal(t, "p9", items[0].ID)
	assert.Equal(t, "p2", items[len(items)-1].ID)
}

func TestRecentReAddMovesToFront(t *testing.T) {
	recent := NewRecent(NewMemorySlots(), nil)
	recent.AddItem(recentItem("a"))
	recent.AddItem(recentItem("b"))
	recent.AddItem(recentItem("a"))

	items := recent.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "b", items[1].ID)
}

func TestRecentSurvivesRestart(t *testing.T) {
	slots := NewMemorySlots()
	recent := NewRecent(slots, nil)
	recent.AddItem(recentItem("a"))
	recent.AddItem(recentItem("b"))

	reloaded := NewRecent(slots, nil)
	items := reloaded.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].ID)
}
