package extract

import (
	"sync"

	"github.com/fwojciec/infobox/bloom"
)

const titleFalsePositiveRate = 0.01

// TitleSet records page titles already seen across dump sources.
// The Bloom filter answers most misses; hits are confirmed against an
// exact set so that no distinct title is ever reported as seen.
// It is safe for concurrent use by multiple goroutines.
type TitleSet struct {
	mu     sync.Mutex
	filter *bloom.Filter
	titles map[string]struct{}
}

// NewTitleSet creates a TitleSet sized for n expected titles.
func NewTitleSet(n uint) *TitleSet {
	return &TitleSet{
		filter: bloom.NewFilter(n, titleFalsePositiveRate),
		titles: make(map[string]struct{}, n),
	}
}

// Add records title and returns false if it has already been seen.
func (s *TitleSet) Add(title string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seen(title) {
		return false
	}
	s.filter.Add(title)
	s.titles[title] = struct{}{}
	return true
}

// Seen returns true if title has been added.
func (s *TitleSet) Seen(title string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seen(title)
}

func (s *TitleSet) seen(title string) bool {
	if !s.filter.Test(title) {
		return false
	}
	_, ok := s.titles[title]
	return ok
}
