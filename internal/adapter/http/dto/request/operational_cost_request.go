package request

import (
	"errors"
	"strings"

	"freight_opcost/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidPayload = errors.New("invalid payload")

type ThresholdsRequest struct {
	Warning  *decimal.Decimal `json:"warning" binding:"required"`
	Critical *decimal.Decimal `json:"critical" binding:"required"`
}

func (r ThresholdsRequest) Resolve() entities.VarianceThresholds {
	var th entities.VarianceThresholds
	if r.Warning != nil {
		th.Warning = *r.Warning
	}
	if r.Critical != nil {
		th.Critical = *r.Critical
	}
	return th
}

// CreateOperationalCostRequest starts a record, optionally seeded from an
// approved quotation and with non-default thresholds.
type CreateOperationalCostRequest struct {
	QuotationID        string             `json:"quotation_id"`
	VarianceThresholds *ThresholdsRequest `json:"variance_thresholds"`
}

func (r CreateOperationalCostRequest) ResolveThresholds() (*entities.VarianceThresholds, error) {
	if r.VarianceThresholds == nil {
		return nil, nil
	}
	if r.VarianceThresholds.Warning == nil || r.VarianceThresholds.Critical == nil {
		return nil, ErrInvalidPayload
	}
	th := r.VarianceThresholds.Resolve()
	return &th, nil
}

type SelectQuotationRequest struct {
	QuotationID string `json:"quotation_id" binding:"required"`
}

func (r SelectQuotationRequest) ResolveQuotationID() string {
	return strings.TrimSpace(r.QuotationID)
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r StatusRequest) ResolveStatus() entities.RecordStatus {
	return entities.RecordStatus(strings.TrimSpace(r.Status))
}

// CategoryCostsRequest sets a category from two scalar amounts.
type CategoryCostsRequest struct {
	QuotationCost *decimal.Decimal `json:"quotation_cost" binding:"required"`
	ActualCost    *decimal.Decimal `json:"actual_cost" binding:"required"`
}

func (r CategoryCostsRequest) Resolve() (quotationCost, actualCost decimal.Decimal) {
	if r.QuotationCost != nil {
		quotationCost = *r.QuotationCost
	}
	if r.ActualCost != nil {
		actualCost = *r.ActualCost
	}
	return quotationCost, actualCost
}

type LinkAWBRequest struct {
	AWBID string `json:"awb_id" binding:"required"`
}
