package variance

import (
	"time"

	"freight_opcost/internal/domain/entities"

	"github.com/google/uuid"
)

// Engine carries the id generator and clock used by the record reducers. The
// aggregation functions of this package do not need it.
type Engine struct {
	newID func() string
	now   func() time.Time
}

func NewEngine() *Engine {
	return &Engine{
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// NewEngineWith is NewEngine with a fixed id generator and clock, for tests.
func NewEngineWith(newID func() string, now func() time.Time) *Engine {
	return &Engine{newID: newID, now: now}
}

// Recompute normalizes the category map to the four fixed keys and rebuilds every
// derived field. It is idempotent and safe to run on records loaded from storage.
func Recompute(r entities.OperationalCostRecord) entities.OperationalCostRecord {
	out := r.Clone()
	categories := make(map[entities.CategoryKey]entities.CategoryState, len(entities.CategoryKeys()))
	for _, key := range entities.CategoryKeys() {
		categories[key] = RecomputeCategory(out.CostCategories[key], out.VarianceThresholds)
	}
	out.CostCategories = categories
	out.Totals = Rollup(out.CostCategories, out.TotalQuotationValue, out.VarianceThresholds)
	if out.Milestones == nil {
		out.Milestones = []entities.Milestone{}
	}
	if out.AWBIDs == nil {
		out.AWBIDs = []string{}
	}
	return out
}

// commit finishes a mutation: full recompute chain plus UpdatedAt.
func (e *Engine) commit(r entities.OperationalCostRecord) entities.OperationalCostRecord {
	out := Recompute(r)
	out.UpdatedAt = e.now()
	return out
}

// Now reads the engine clock.
func (e *Engine) Now() time.Time {
	return e.now()
}
