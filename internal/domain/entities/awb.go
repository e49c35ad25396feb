package entities

import "github.com/shopspring/decimal"

type AWBStatus string

const (
	AWBStatusBooked    AWBStatus = "Booked"
	AWBStatusInTransit AWBStatus = "InTransit"
	AWBStatusArrived   AWBStatus = "Arrived"
	AWBStatusDelivered AWBStatus = "Delivered"
	AWBStatusCancelled AWBStatus = "Cancelled"
)

// AWBChargeRecord is the charge view of an air waybill owned by the AWB store.
//
// TotalCharge is pre-summed by the AWB source and is never recomputed here.
type AWBChargeRecord struct {
	ID                string          `json:"id"`
	AWBNumber         string          `json:"awb_number"`
	FreightCharge     decimal.Decimal `json:"freight_charge"`
	FuelSurcharge     decimal.Decimal `json:"fuel_surcharge"`
	SecuritySurcharge decimal.Decimal `json:"security_surcharge"`
	OtherCharges      decimal.Decimal `json:"other_charges"`
	TotalCharge       decimal.Decimal `json:"total_charge"`
	Weight            decimal.Decimal `json:"weight"`
	Status            AWBStatus       `json:"status"`
}

// AWBStatusBucket is one non-empty bucket of the status histogram.
type AWBStatusBucket struct {
	Status     AWBStatus       `json:"status"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"`
}

// AWBSummary aggregates the charges of the AWBs linked to a record.
type AWBSummary struct {
	Count                  int               `json:"count"`
	TotalFreightCharge     decimal.Decimal   `json:"total_freight_charge"`
	TotalFuelSurcharge     decimal.Decimal   `json:"total_fuel_surcharge"`
	TotalSecuritySurcharge decimal.Decimal   `json:"total_security_surcharge"`
	TotalOtherCharges      decimal.Decimal   `json:"total_other_charges"`
	TotalCharge            decimal.Decimal   `json:"total_charge"`
	TotalWeight            decimal.Decimal   `json:"total_weight"`
	StatusDistribution     []AWBStatusBucket `json:"status_distribution"`
	DeliverySuccessRate    decimal.Decimal   `json:"delivery_success_rate"`
	AverageWeight          decimal.Decimal   `json:"average_weight"`
	AverageValue           decimal.Decimal   `json:"average_value"`
}
