package stores

import (
	"testing"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compareItem(id string) models.CompareItem {
	return models.CompareItem{ID: id, Title: "Product " + id}
}

func TestCompareRejectsFourthProduct(t *testing.T) {
	compare := NewCompare(NewMemorySlots(), nil)

	require.NoError(t, compare.AddItem(compareItem("a")))
	require.NoError(t, compare.AddItem(compareItem("b")))
	require.NoError(t, compare.AddItem(compareItem("c")))

	err := compare.AddItem(compareItem("d"))
	assert.ErrorIs(t, err, ErrCompareFull)
	assert.Len(t, compare.Items(), 3)
	assert.False(t, compare.Contains("d"))
}

func TestCompareDuplicateIsSilentNoop(t *testing.T) {
	compare := NewCompare(NewMemorySlots(), nil)

	require.NoError(t, compare.AddItem(compareItem("a")))
	require.NoError(t, compare.AddItem(compareItem("b")))
	require.NoError(t, compare.AddItem(compareItem("c")))

	// Re-adding a present product succeeds even at capacity and changes
	// nothing.
	assert.NoError(t, compare.AddItem(compareItem("b")))
	assert.Len(t, compare.Items(), 3)
}

func TestCompareRemoveFreesCapacity(t *testing.T) {
	compare := NewCompare(NewMemorySlots(), nil)
	require.NoError(t, compare.AddItem(compareItem("a")))
	require.NoError(t, compare.AddItem(compareItem("b")))
	require.NoError(t, compare.AddItem(compareItem("c")))

	compare.RemoveItem("b")
	assert.NoError(t, compare.AddItem(compareItem("d")))
	assert.True(t, compare.Contains("d"))
}

func TestCompareToggle(t *testing.T) {
	compare := NewCompare(NewMemorySlots(), nil)

	require.NoError(t, compare.Toggle(compareItem("a")))
	assert.True(t, compare.Contains("a"))

	require.NoError(t, compare.Toggle(compareItem("a")))
	assert.False(t, compare.Contains("a"))
}

func TestCompareClear(t *testing.T) {
	compare := NewCompare(NewMemorySlots(), nil)
	require.NoError(t, compare.AddItem(compareItem("a")))
	compare.Clear()
	assert.Empty(t, compare.Items())
}

func TestCompareSurvivesRestart(t *testing.T) {
	slots := NewMemorySlots()
	compare := NewCompare(slots, nil)
	require.NoError(t, compare.AddItem(compareItem("a")))

	reloaded := NewCompare(slots, nil)
	assert.True(t, reloaded.Contains("a"))
}
