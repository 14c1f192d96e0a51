package analysis

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/snpify/snpify-server/internal/domain"
)

// Store holds analysis results in a bounded LRU cache. Readers always get
// deep copies, so a result being mutated by the pipeline can be polled
// safely at any time.
type Store struct {
	mu    sync.Mutex
	cache *lru.Cache[string, *domain.AnalysisResult]
}

// NewStore creates a result store that keeps at most size results, evicting
// the least recently used when full.
func NewStore(size int) (*Store, error) {
	cache, err := lru.New[string, *domain.AnalysisResult](size)
	if err != nil {
		return nil, err
	}
	return &Store{cache: cache}, nil
}

// Put inserts a result under its ID.
func (s *Store) Put(result *domain.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Add(result.ID, result)
}

// Get returns a deep copy of the result, or false if it is unknown or has
// been evicted.
func (s *Store) Get(id string) (*domain.AnalysisResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	return result.Clone(), true
}

// Update applies fn to the stored result under the store lock. It reports
// whether the result was present.
func (s *Store) Update(id string, fn func(*domain.AnalysisResult)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	result, ok := s.cache.Get(id)
	if !ok {
		return false
	}
	fn(result)
	return true
}

// Delete removes a result and reports whether it was present.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Remove(id)
}

// Snapshot returns deep copies of every cached result.
func (s *Store) Snapshot() []*domain.AnalysisResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	results := make([]*domain.AnalysisResult, 0, s.cache.Len())
	for _, id := range s.cache.Keys() {
		if result, ok := s.cache.Peek(id); ok {
			results = append(results, result.Clone())
		}
	}
	return results
}

// Len returns the number of cached results.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}
