package variance

import (
	"fmt"
	"strings"

	"freight_opcost/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ValidateThresholds requires non-negative percentages with critical >= warning,
// which keeps classification monotonic.
func ValidateThresholds(th entities.VarianceThresholds) error {
	if th.Warning.IsNegative() || th.Critical.IsNegative() {
		return fmt.Errorf("%w: thresholds must not be negative", ErrInvalidThresholds)
	}
	if th.Critical.LessThan(th.Warning) {
		return fmt.Errorf("%w: critical %s is below warning %s", ErrInvalidThresholds, th.Critical, th.Warning)
	}
	return nil
}

// NewRecord returns an Active record at approval stage 0 with empty categories.
func (e *Engine) NewRecord(th entities.VarianceThresholds) (entities.OperationalCostRecord, error) {
	if err := ValidateThresholds(th); err != nil {
		return entities.OperationalCostRecord{}, err
	}
	now := e.now()
	r := entities.OperationalCostRecord{
		ID:                   e.newID(),
		TotalQuotationValue:  decimal.Zero,
		CostCategories:       map[entities.CategoryKey]entities.CategoryState{},
		VarianceThresholds:   th,
		CurrentApprovalStage: entities.ApprovalStageNotStarted,
		Milestones:           []entities.Milestone{},
		AWBIDs:               []string{},
		Status:               entities.RecordStatusActive,
		CreatedAt:            now,
	}
	r = Recompute(r)
	r.UpdatedAt = now
	return r, nil
}

// SelectQuotation makes q the baseline of the record: the selling price becomes
// TotalQuotationValue and every category is re-seeded from the cargo leg costs.
// Costs are not re-synced later unless a quotation is selected again.
func (e *Engine) SelectQuotation(r entities.OperationalCostRecord, q entities.Quotation) (entities.OperationalCostRecord, error) {
	if strings.TrimSpace(q.ID) == "" {
		return entities.OperationalCostRecord{}, ErrInvalidQuotation
	}

	out := r.Clone()
	out.QuotationID = q.ID
	out.QuotationNumber = q.QuotationNumber
	out.CustomerName = q.CustomerName
	out.TotalQuotationValue = q.SellingPrice

	seeded := SeedCosts(q)
	out.CostCategories = make(map[entities.CategoryKey]entities.CategoryState, len(seeded))
	for _, key := range entities.CategoryKeys() {
		var c entities.CategoryState
		if amount := seeded[key]; !amount.IsZero() {
			c.Items = []entities.CostItem{{
				ID:           e.newID(),
				Description:  fmt.Sprintf("Quotation %s baseline", q.QuotationNumber),
				Amount:       amount,
				ActualAmount: decimal.Zero,
				CreatedAt:    e.now(),
			}}
		}
		out.CostCategories[key] = c
	}
	return e.commit(out), nil
}

// SeedCosts sums the per-leg cargo costs of a quotation by category.
func SeedCosts(q entities.Quotation) map[entities.CategoryKey]decimal.Decimal {
	out := map[entities.CategoryKey]decimal.Decimal{
		entities.CategoryOrigin:      decimal.Zero,
		entities.CategoryFreight:     decimal.Zero,
		entities.CategoryDestination: decimal.Zero,
		entities.CategoryAdditional:  decimal.Zero,
	}
	for _, ci := range q.CargoItems {
		out[entities.CategoryOrigin] = out[entities.CategoryOrigin].Add(ci.OriginCost)
		out[entities.CategoryFreight] = out[entities.CategoryFreight].Add(ci.FreightCost)
		out[entities.CategoryDestination] = out[entities.CategoryDestination].Add(ci.DestinationCost)
		out[entities.CategoryAdditional] = out[entities.CategoryAdditional].Add(ci.AdditionalCost)
	}
	return out
}

// SetThresholds replaces the thresholds and reclassifies every category.
func (e *Engine) SetThresholds(r entities.OperationalCostRecord, th entities.VarianceThresholds) (entities.OperationalCostRecord, error) {
	if err := ValidateThresholds(th); err != nil {
		return entities.OperationalCostRecord{}, err
	}
	out := r.Clone()
	out.VarianceThresholds = th
	return e.commit(out), nil
}

func (e *Engine) SetStatus(r entities.OperationalCostRecord, status entities.RecordStatus) (entities.OperationalCostRecord, error) {
	if !status.Valid() {
		return entities.OperationalCostRecord{}, ErrInvalidRecordStatus
	}
	out := r.Clone()
	out.Status = status
	return e.commit(out), nil
}

// AdvanceApproval and RetreatApproval move the cursor by one stage. At the
// bounds the record is returned unchanged, UpdatedAt included.
func (e *Engine) AdvanceApproval(r entities.OperationalCostRecord) entities.OperationalCostRecord {
	return e.moveStage(r, AdvanceStage(r.CurrentApprovalStage))
}

func (e *Engine) RetreatApproval(r entities.OperationalCostRecord) entities.OperationalCostRecord {
	return e.moveStage(r, RetreatStage(r.CurrentApprovalStage))
}

func (e *Engine) moveStage(r entities.OperationalCostRecord, next int) entities.OperationalCostRecord {
	out := r.Clone()
	if next == r.CurrentApprovalStage {
		return Recompute(out)
	}
	out.CurrentApprovalStage = next
	return e.commit(out)
}

// LinkAWB adds an AWB id to the record; linking an id twice is a no-op.
func (e *Engine) LinkAWB(r entities.OperationalCostRecord, awbID string) (entities.OperationalCostRecord, error) {
	awbID = strings.TrimSpace(awbID)
	if awbID == "" {
		return entities.OperationalCostRecord{}, ErrInvalidAWBID
	}
	out := r.Clone()
	for _, id := range out.AWBIDs {
		if id == awbID {
			return Recompute(out), nil
		}
	}
	out.AWBIDs = append(out.AWBIDs, awbID)
	return e.commit(out), nil
}

// UnlinkAWB removes an AWB id; unknown ids are ignored.
func (e *Engine) UnlinkAWB(r entities.OperationalCostRecord, awbID string) (entities.OperationalCostRecord, error) {
	awbID = strings.TrimSpace(awbID)
	if awbID == "" {
		return entities.OperationalCostRecord{}, ErrInvalidAWBID
	}
	out := r.Clone()
	for i, id := range out.AWBIDs {
		if id == awbID {
			out.AWBIDs = append(out.AWBIDs[:i], out.AWBIDs[i+1:]...)
			return e.commit(out), nil
		}
	}
	return Recompute(out), nil
}
