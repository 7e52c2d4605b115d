package catalog

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSuggesterCoalescesRapidQueries(t *testing.T) {
	cat := New(testCatalog(), nil)
	s := NewSuggester(cat, 20*time.Millisecond)

	var mu sync.Mutex
	var delivered [][]string
	deliver := func(result []string) {
		mu.Lock()
		delivered = append(delivered, result)
		mu.Unlock()
	}

	// Three keystrokes in quick succession: only the last query should run.
	s.Query("wa", deliver)
	s.Query("wal", deliver)
	s.Query("waln", deliver)

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, delivered, 1)
	assert.Equal(t, []string{"Walnut Desk Lamp"}, delivered[0])
}

func TestSuggesterDropsStaleCompletion(t *testing.T) {
	cat := New(testCatalog(), nil)
	s := NewSuggester(cat, 10*time.Millisecond)

	var mu sync.Mutex
	var last []string
	deliver := func(result []string) {
		mu.Lock()
		last = result
		mu.Unlock()
	}

	s.Query("wool", deliver)
	time.Sleep(50 * time.Millisecond)
	s.Query("mug", deliver)
	time.Sleep(50 * time.Millisecond)

	// The later query's result is authoritative.
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"Ceramic Mug"}, last)
}

func TestSuggesterZeroDelayRunsImmediately(t *testing.T) {
	cat := New(testCatalog(), nil)
	s := NewSuggester(cat, 0)

	var got []string
	s.Query("linen", func(result []string) { got = result })
	assert.Equal(t, []string{"Linen Shirt"}, got)
}
