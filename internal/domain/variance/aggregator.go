// Package variance is the operational cost variance engine: category
// aggregation, shipment rollup, approval cursor, AWB charge summary and the
// record reducers built on top of them.
//
// Everything here is synchronous and free of I/O. Reducers take a record and
// return a new one; the input is never modified.
package variance

import (
	"freight_opcost/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Percentage returns part/base*100, or zero when base is not positive.
func Percentage(part, base decimal.Decimal) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(base)
}

// Classify maps a variance percentage to a status using its absolute value, so
// under-budget variances are classified the same way as overruns.
func Classify(pct decimal.Decimal, th entities.VarianceThresholds) entities.VarianceStatus {
	abs := pct.Abs()
	switch {
	case abs.GreaterThanOrEqual(th.Critical):
		return entities.VarianceStatusCritical
	case abs.GreaterThanOrEqual(th.Warning):
		return entities.VarianceStatusWarning
	default:
		return entities.VarianceStatusNormal
	}
}

// RecomputeItem refreshes the derived variance fields of a single cost item.
func RecomputeItem(it entities.CostItem) entities.CostItem {
	it.Variance = it.ActualAmount.Sub(it.Amount)
	it.VariancePercentage = Percentage(it.Variance, it.Amount)
	return it
}

// RecomputeCategory rebuilds a category's totals from its items. Negative
// amounts are summed as-is (adjustments, credit notes).
func RecomputeCategory(c entities.CategoryState, th entities.VarianceThresholds) entities.CategoryState {
	out := entities.CategoryState{
		QuotationCost: decimal.Zero,
		ActualCost:    decimal.Zero,
		Items:         make([]entities.CostItem, 0, len(c.Items)),
	}
	for _, it := range c.Clone().Items {
		it = RecomputeItem(it)
		out.QuotationCost = out.QuotationCost.Add(it.Amount)
		out.ActualCost = out.ActualCost.Add(it.ActualAmount)
		out.Items = append(out.Items, it)
	}
	out.Variance = out.ActualCost.Sub(out.QuotationCost)
	out.VariancePercentage = Percentage(out.Variance, out.QuotationCost)
	out.Status = Classify(out.VariancePercentage, th)
	return out
}
