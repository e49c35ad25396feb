package memory

import (
	"context"
	"sort"
	"sync"

	"freight_opcost/internal/domain/entities"
	"freight_opcost/internal/usecase/interfaces"
)

// QuotationStore provides in-memory quotation storage
type QuotationStore struct {
	mu         sync.RWMutex
	quotations map[string]entities.Quotation
}

func NewQuotationStore(seed ...entities.Quotation) *QuotationStore {
	s := &QuotationStore{quotations: make(map[string]entities.Quotation, len(seed))}
	for _, q := range seed {
		s.Put(q)
	}
	return s
}

var _ interfaces.IQuotationStore = (*QuotationStore)(nil)

// Put inserts or replaces a quotation.
func (s *QuotationStore) Put(q entities.Quotation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q.CargoItems = append([]entities.CargoItem(nil), q.CargoItems...)
	s.quotations[q.ID] = q
}

// GetApprovedQuotations returns approved quotations ordered by quotation number.
func (s *QuotationStore) GetApprovedQuotations(_ context.Context) ([]entities.Quotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Quotation, 0, len(s.quotations))
	for _, q := range s.quotations {
		if q.Status != entities.QuotationStatusApproved {
			continue
		}
		q.CargoItems = append([]entities.CargoItem(nil), q.CargoItems...)
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].QuotationNumber != out[j].QuotationNumber {
			return out[i].QuotationNumber < out[j].QuotationNumber
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
