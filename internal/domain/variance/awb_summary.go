package variance

import (
	"sort"

	"freight_opcost/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// SummarizeAWBs aggregates AWB charges. TotalCharge is summed as supplied, not
// rebuilt from its parts. Ratios are zero for an empty input.
func SummarizeAWBs(awbs []entities.AWBChargeRecord) entities.AWBSummary {
	s := entities.AWBSummary{
		Count:                  len(awbs),
		TotalFreightCharge:     decimal.Zero,
		TotalFuelSurcharge:     decimal.Zero,
		TotalSecuritySurcharge: decimal.Zero,
		TotalOtherCharges:      decimal.Zero,
		TotalCharge:            decimal.Zero,
		TotalWeight:            decimal.Zero,
		StatusDistribution:     []entities.AWBStatusBucket{},
		DeliverySuccessRate:    decimal.Zero,
		AverageWeight:          decimal.Zero,
		AverageValue:           decimal.Zero,
	}
	if len(awbs) == 0 {
		return s
	}

	counts := make(map[entities.AWBStatus]int)
	for _, a := range awbs {
		s.TotalFreightCharge = s.TotalFreightCharge.Add(a.FreightCharge)
		s.TotalFuelSurcharge = s.TotalFuelSurcharge.Add(a.FuelSurcharge)
		s.TotalSecuritySurcharge = s.TotalSecuritySurcharge.Add(a.SecuritySurcharge)
		s.TotalOtherCharges = s.TotalOtherCharges.Add(a.OtherCharges)
		s.TotalCharge = s.TotalCharge.Add(a.TotalCharge)
		s.TotalWeight = s.TotalWeight.Add(a.Weight)
		counts[a.Status]++
	}

	n := decimal.NewFromInt(int64(len(awbs)))
	for status, count := range counts {
		s.StatusDistribution = append(s.StatusDistribution, entities.AWBStatusBucket{
			Status:     status,
			Count:      count,
			Percentage: Percentage(decimal.NewFromInt(int64(count)), n),
		})
	}
	sort.Slice(s.StatusDistribution, func(i, j int) bool {
		return s.StatusDistribution[i].Status < s.StatusDistribution[j].Status
	})

	s.DeliverySuccessRate = decimal.NewFromInt(int64(counts[entities.AWBStatusDelivered])).Div(n)
	s.AverageWeight = s.TotalWeight.Div(n)
	s.AverageValue = s.TotalCharge.Div(n)
	return s
}

// LinkedAWBs keeps the AWBs whose id is in ids, in the order of ids.
func LinkedAWBs(all []entities.AWBChargeRecord, ids []string) []entities.AWBChargeRecord {
	byID := make(map[string]entities.AWBChargeRecord, len(all))
	for _, a := range all {
		byID[a.ID] = a
	}
	out := make([]entities.AWBChargeRecord, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	return out
}
