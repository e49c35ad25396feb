// Package memory holds process-local stores used with STORAGE_DRIVER=memory
// and in tests. Every read and write goes through a deep copy.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"freight_opcost/internal/domain/entities"
	"freight_opcost/internal/usecase/interfaces"
)

var ErrDuplicateID = errors.New("record id already exists")

// OperationalCostRepository provides in-memory record storage
type OperationalCostRepository struct {
	mu      sync.RWMutex
	records map[string]entities.OperationalCostRecord
}

// NewOperationalCostRepository creates an empty repository
func NewOperationalCostRepository() *OperationalCostRepository {
	return &OperationalCostRepository{records: make(map[string]entities.OperationalCostRecord)}
}

// Verify interface compliance
var _ interfaces.IOperationalCostRepository = (*OperationalCostRepository)(nil)

func (r *OperationalCostRepository) Create(_ context.Context, rec entities.OperationalCostRecord) (entities.OperationalCostRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[rec.ID]; exists {
		return entities.OperationalCostRecord{}, ErrDuplicateID
	}
	r.records[rec.ID] = rec.Clone()
	return rec.Clone(), nil
}

func (r *OperationalCostRepository) GetByID(_ context.Context, id string) (entities.OperationalCostRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok {
		return entities.OperationalCostRecord{}, nil
	}
	return rec.Clone(), nil
}

// List returns records ordered by id.
func (r *OperationalCostRepository) List(_ context.Context) ([]entities.OperationalCostRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.OperationalCostRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *OperationalCostRepository) Update(_ context.Context, rec entities.OperationalCostRecord) (entities.OperationalCostRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[rec.ID]; !exists {
		return entities.OperationalCostRecord{}, nil
	}
	r.records[rec.ID] = rec.Clone()
	return rec.Clone(), nil
}

func (r *OperationalCostRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[id]; !exists {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}
