package variance

import (
	"testing"

	"freight_opcost/internal/domain/entities"
)

func TestRollup_Reducibility(t *testing.T) {
	th := entities.DefaultVarianceThresholds()
	categories := map[entities.CategoryKey]entities.CategoryState{}
	amounts := map[entities.CategoryKey][2]string{
		entities.CategoryOrigin:      {"1200.50", "1100.25"},
		entities.CategoryFreight:     {"8000", "9100"},
		entities.CategoryDestination: {"-300", "150"},
		entities.CategoryAdditional:  {"0", "75.10"},
	}
	for key, a := range amounts {
		categories[key] = RecomputeCategory(entities.CategoryState{Items: []entities.CostItem{
			{ID: string(key), Amount: dec(a[0]), ActualAmount: dec(a[1])},
		}}, th)
	}

	res := Rollup(categories, dec("15000"), th)

	sum := dec("0")
	for _, c := range categories {
		sum = sum.Add(c.ActualCost.Sub(c.QuotationCost))
	}
	if !res.TotalVariance.Equal(sum) {
		t.Fatalf("total variance %s, want sum of categories %s", res.TotalVariance, sum)
	}
	assertDec(t, "total quotation", res.TotalQuotationCost, "8900.50")
	assertDec(t, "total actual", res.TotalActualCost, "10425.35")
	assertDec(t, "margin impact", res.MarginImpact, res.TotalVariance.String())
	assertDec(t, "projected margin", res.ProjectedMargin, "4574.65")
}

func TestRollup_WorkedExample(t *testing.T) {
	th := entities.DefaultVarianceThresholds()
	categories := map[entities.CategoryKey]entities.CategoryState{
		entities.CategoryFreight: RecomputeCategory(entities.CategoryState{Items: []entities.CostItem{
			{ID: "f", Amount: dec("5000000"), ActualAmount: dec("6000000")},
		}}, th),
		entities.CategoryOrigin:      RecomputeCategory(entities.CategoryState{}, th),
		entities.CategoryDestination: RecomputeCategory(entities.CategoryState{}, th),
		entities.CategoryAdditional:  RecomputeCategory(entities.CategoryState{}, th),
	}

	freight := categories[entities.CategoryFreight]
	assertDec(t, "freight variance", freight.Variance, "1000000")
	assertDec(t, "freight pct", freight.VariancePercentage, "20")
	if freight.Status != entities.VarianceStatusCritical {
		t.Fatalf("freight status=%s, want Critical", freight.Status)
	}

	res := Rollup(categories, dec("10000000"), th)
	assertDec(t, "total variance", res.TotalVariance, "1000000")
	assertDec(t, "total pct", res.TotalVariancePercentage, "20")
	assertDec(t, "projected margin", res.ProjectedMargin, "4000000")
	assertDec(t, "projected margin pct", res.ProjectedMarginPercentage, "40")
	if res.OverallVarianceStatus != entities.VarianceStatusCritical {
		t.Fatalf("overall status=%s, want Critical", res.OverallVarianceStatus)
	}
	if res.CriticalCategories != 1 || res.WarningCategories != 0 {
		t.Fatalf("unexpected category counts: %+v", res)
	}
}

func TestRollup_EmptyAndZeroValue(t *testing.T) {
	res := Rollup(nil, dec("0"), entities.DefaultVarianceThresholds())
	assertDec(t, "total variance", res.TotalVariance, "0")
	assertDec(t, "total pct", res.TotalVariancePercentage, "0")
	assertDec(t, "projected margin pct", res.ProjectedMarginPercentage, "0")
	if res.OverallVarianceStatus != entities.VarianceStatusNormal {
		t.Fatalf("overall status=%s, want Normal", res.OverallVarianceStatus)
	}
}
