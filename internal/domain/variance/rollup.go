package variance

import (
	"freight_opcost/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Rollup reduces the four categories into shipment totals.
//
// A missing category counts as zero. totalQuotationValue is the selling price of
// the quotation and only feeds the projected margin.
func Rollup(categories map[entities.CategoryKey]entities.CategoryState, totalQuotationValue decimal.Decimal, th entities.VarianceThresholds) entities.RollupResult {
	res := entities.RollupResult{
		TotalQuotationCost: decimal.Zero,
		TotalActualCost:    decimal.Zero,
	}
	for _, key := range entities.CategoryKeys() {
		c, ok := categories[key]
		if !ok {
			continue
		}
		res.TotalQuotationCost = res.TotalQuotationCost.Add(c.QuotationCost)
		res.TotalActualCost = res.TotalActualCost.Add(c.ActualCost)
		switch c.Status {
		case entities.VarianceStatusWarning:
			res.WarningCategories++
		case entities.VarianceStatusCritical:
			res.CriticalCategories++
		}
	}

	res.TotalVariance = res.TotalActualCost.Sub(res.TotalQuotationCost)
	res.TotalVariancePercentage = Percentage(res.TotalVariance, res.TotalQuotationCost)
	res.MarginImpact = res.TotalVariance
	res.ProjectedMargin = totalQuotationValue.Sub(res.TotalActualCost)
	res.ProjectedMarginPercentage = Percentage(res.ProjectedMargin, totalQuotationValue)
	res.OverallVarianceStatus = Classify(res.TotalVariancePercentage, th)
	return res
}
