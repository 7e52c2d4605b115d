package catalog

import (
	"sync"
	"time"
)

// Suggester debounces typeahead queries. Rapid calls are coalesced: only
// after the input has been quiet for the configured delay does a lookup run,
// and a result is delivered only if no newer query arrived in the meantime,
// so a stale completion can never overwrite a later one.
type Suggester struct {
	cat   *Catalog
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// NewSuggester wraps cat with a debounce window. A delay of 0 runs every
// query immediately (still dropping stale deliveries).
func NewSuggester(cat *Catalog, delay time.Duration) *Suggester {
	return &Suggester{cat: cat, delay: delay}
}

// Query schedules a suggestion lookup for text and calls deliver with the
// result. Only the latest call's result is ever delivered.
func (s *Suggester) Query(text string, deliver func([]string)) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	if s.timer != nil {
		s.timer.Stop()
	}

	run := func() {
		result := Suggest(s.cat.Products(), text)
		s.mu.Lock()
		stale := seq != s.seq
		s.mu.Unlock()
		if !stale {
			deliver(result)
		}
	}

	if s.delay <= 0 {
		s.mu.Unlock()
		run()
		return
	}
	s.timer = time.AfterFunc(s.delay, run)
	s.mu.Unlock()
}
