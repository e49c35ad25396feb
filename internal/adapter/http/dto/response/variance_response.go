package response

import (
	"time"

	"freight_opcost/internal/domain/entities"
	"freight_opcost/internal/usecase"

	"github.com/shopspring/decimal"
)

type ApprovalStageResponse struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

func FromApprovalStage(s entities.ApprovalStage) ApprovalStageResponse {
	return ApprovalStageResponse{Index: s.Index, Name: s.Name, Description: s.Description, Required: s.Required}
}

func FromApprovalStages(stages []entities.ApprovalStage) []ApprovalStageResponse {
	out := make([]ApprovalStageResponse, 0, len(stages))
	for _, s := range stages {
		out = append(out, FromApprovalStage(s))
	}
	return out
}

type VarianceResponse struct {
	RecordID     string                 `json:"record_id"`
	Categories   []CategoryResponse     `json:"cost_categories"`
	Totals       TotalsResponse         `json:"totals"`
	Thresholds   ThresholdsResponse     `json:"variance_thresholds"`
	PendingStage *ApprovalStageResponse `json:"pending_approval_stage,omitempty"`
}

func FromVarianceReport(rep usecase.VarianceReport) VarianceResponse {
	res := VarianceResponse{
		RecordID:   rep.RecordID,
		Categories: FromCategories(rep.Categories),
		Totals:     FromTotals(rep.Totals),
		Thresholds: FromThresholds(rep.Thresholds),
	}
	if rep.PendingStage != nil {
		s := FromApprovalStage(*rep.PendingStage)
		res.PendingStage = &s
	}
	return res
}

type AWBResponse struct {
	ID                string          `json:"id"`
	AWBNumber         string          `json:"awb_number"`
	FreightCharge     decimal.Decimal `json:"freight_charge"`
	FuelSurcharge     decimal.Decimal `json:"fuel_surcharge"`
	SecuritySurcharge decimal.Decimal `json:"security_surcharge"`
	OtherCharges      decimal.Decimal `json:"other_charges"`
	TotalCharge       decimal.Decimal `json:"total_charge"`
	Weight            decimal.Decimal `json:"weight"`
	Status            string          `json:"status"`
}

type AWBStatusBucketResponse struct {
	Status     string          `json:"status"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"`
}

type AWBSummaryResponse struct {
	RecordID               string                    `json:"record_id"`
	Count                  int                       `json:"count"`
	TotalFreightCharge     decimal.Decimal           `json:"total_freight_charge"`
	TotalFuelSurcharge     decimal.Decimal           `json:"total_fuel_surcharge"`
	TotalSecuritySurcharge decimal.Decimal           `json:"total_security_surcharge"`
	TotalOtherCharges      decimal.Decimal           `json:"total_other_charges"`
	TotalCharge            decimal.Decimal           `json:"total_charge"`
	TotalWeight            decimal.Decimal           `json:"total_weight"`
	StatusDistribution     []AWBStatusBucketResponse `json:"status_distribution"`
	DeliverySuccessRate    decimal.Decimal           `json:"delivery_success_rate"`
	AverageWeight          decimal.Decimal           `json:"average_weight"`
	AverageValue           decimal.Decimal           `json:"average_value"`
	AWBs                   []AWBResponse             `json:"awbs"`
}

func FromAWBReport(rep usecase.AWBReport) AWBSummaryResponse {
	s := rep.Summary
	res := AWBSummaryResponse{
		RecordID:               rep.RecordID,
		Count:                  s.Count,
		TotalFreightCharge:     s.TotalFreightCharge,
		TotalFuelSurcharge:     s.TotalFuelSurcharge,
		TotalSecuritySurcharge: s.TotalSecuritySurcharge,
		TotalOtherCharges:      s.TotalOtherCharges,
		TotalCharge:            s.TotalCharge,
		TotalWeight:            s.TotalWeight,
		StatusDistribution:     make([]AWBStatusBucketResponse, 0, len(s.StatusDistribution)),
		DeliverySuccessRate:    s.DeliverySuccessRate,
		AverageWeight:          s.AverageWeight,
		AverageValue:           s.AverageValue,
		AWBs:                   make([]AWBResponse, 0, len(rep.AWBs)),
	}
	for _, b := range s.StatusDistribution {
		res.StatusDistribution = append(res.StatusDistribution, AWBStatusBucketResponse{
			Status: string(b.Status), Count: b.Count, Percentage: b.Percentage,
		})
	}
	for _, a := range rep.AWBs {
		res.AWBs = append(res.AWBs, AWBResponse{
			ID:                a.ID,
			AWBNumber:         a.AWBNumber,
			FreightCharge:     a.FreightCharge,
			FuelSurcharge:     a.FuelSurcharge,
			SecuritySurcharge: a.SecuritySurcharge,
			OtherCharges:      a.OtherCharges,
			TotalCharge:       a.TotalCharge,
			Weight:            a.Weight,
			Status:            string(a.Status),
		})
	}
	return res
}

type QuotationResponse struct {
	ID              string          `json:"id"`
	QuotationNumber string          `json:"quotation_number"`
	CustomerName    string          `json:"customer_name"`
	CustomerID      string          `json:"customer_id"`
	Origin          string          `json:"origin"`
	Destination     string          `json:"destination"`
	SellingPrice    decimal.Decimal `json:"selling_price"`
	Status          string          `json:"status"`
	CargoItemCount  int             `json:"cargo_item_count"`
}

func FromQuotations(qs []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, QuotationResponse{
			ID:              q.ID,
			QuotationNumber: q.QuotationNumber,
			CustomerName:    q.CustomerName,
			CustomerID:      q.CustomerID,
			Origin:          q.Origin,
			Destination:     q.Destination,
			SellingPrice:    q.SellingPrice,
			Status:          q.Status,
			CargoItemCount:  len(q.CargoItems),
		})
	}
	return out
}

type NotificationResponse struct {
	Level     string    `json:"level"`
	Action    string    `json:"action"`
	RecordID  string    `json:"record_id,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func FromNotifications(ns []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, NotificationResponse{
			Level:     string(n.Level),
			Action:    n.Action,
			RecordID:  n.RecordID,
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
		})
	}
	return out
}
