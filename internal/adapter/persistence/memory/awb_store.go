package memory

import (
	"context"
	"sort"
	"sync"

	"freight_opcost/internal/domain/entities"
	"freight_opcost/internal/usecase/interfaces"
)

// AWBStore provides in-memory AWB charge storage
type AWBStore struct {
	mu   sync.RWMutex
	awbs map[string]entities.AWBChargeRecord
}

func NewAWBStore(seed ...entities.AWBChargeRecord) *AWBStore {
	s := &AWBStore{awbs: make(map[string]entities.AWBChargeRecord, len(seed))}
	for _, a := range seed {
		s.Put(a)
	}
	return s
}

var _ interfaces.IAWBStore = (*AWBStore)(nil)

// Put inserts or replaces an AWB.
func (s *AWBStore) Put(a entities.AWBChargeRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.awbs[a.ID] = a
}

// GetAll returns every AWB ordered by id.
func (s *AWBStore) GetAll(_ context.Context) ([]entities.AWBChargeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.AWBChargeRecord, 0, len(s.awbs))
	for _, a := range s.awbs {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
