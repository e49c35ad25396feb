package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryKey identifies one of the four fixed cost buckets of a shipment.

type CategoryKey string

const (
	CategoryOrigin      CategoryKey = "origin"
	CategoryFreight     CategoryKey = "freight"
	CategoryDestination CategoryKey = "destination"
	CategoryAdditional  CategoryKey = "additional"
)

// CategoryKeys returns the closed set of category keys in display order.
func CategoryKeys() []CategoryKey {
	return []CategoryKey{CategoryOrigin, CategoryFreight, CategoryDestination, CategoryAdditional}
}

func (k CategoryKey) Valid() bool {
	switch k {
	case CategoryOrigin, CategoryFreight, CategoryDestination, CategoryAdditional:
		return true
	}
	return false
}

// VarianceStatus is the severity of a variance percentage against the thresholds.

type VarianceStatus string

const (
	VarianceStatusNormal   VarianceStatus = "Normal"
	VarianceStatusWarning  VarianceStatus = "Warning"
	VarianceStatusCritical VarianceStatus = "Critical"
)

// RecordStatus is the lifecycle tag of an operational cost record. It is
// independent of the variance status.

type RecordStatus string

const (
	RecordStatusActive    RecordStatus = "Active"
	RecordStatusCompleted RecordStatus = "Completed"
	RecordStatusCancelled RecordStatus = "Cancelled"
)

func (s RecordStatus) Valid() bool {
	switch s {
	case RecordStatusActive, RecordStatusCompleted, RecordStatusCancelled:
		return true
	}
	return false
}

// VarianceThresholds are percentages; a variance whose absolute percentage reaches
// Warning (resp. Critical) is classified accordingly.
type VarianceThresholds struct {
	Warning  decimal.Decimal `json:"warning"`
	Critical decimal.Decimal `json:"critical"`
}

// DefaultVarianceThresholds returns warning 5% / critical 10%.
func DefaultVarianceThresholds() VarianceThresholds {
	return VarianceThresholds{
		Warning:  decimal.NewFromInt(5),
		Critical: decimal.NewFromInt(10),
	}
}

// CostItem is one line entry within a category.
//
// Variance and VariancePercentage are derived from Amount (budgeted) and
// ActualAmount. Approved is an audit flag only.
type CostItem struct {
	ID                 string          `json:"id"`
	Description        string          `json:"description"`
	VendorName         string          `json:"vendor_name"`
	Amount             decimal.Decimal `json:"amount"`
	ActualAmount       decimal.Decimal `json:"actual_amount"`
	Variance           decimal.Decimal `json:"variance"`
	VariancePercentage decimal.Decimal `json:"variance_percentage"`
	Approved           bool            `json:"approved"`
	InvoiceNumber      string          `json:"invoice_number"`
	DueDate            *time.Time      `json:"due_date,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// CategoryState holds the items of one category plus the values derived from them.
//
// QuotationCost and ActualCost are always the sums of the item amounts.
type CategoryState struct {
	QuotationCost      decimal.Decimal `json:"quotation_cost"`
	ActualCost         decimal.Decimal `json:"actual_cost"`
	Variance           decimal.Decimal `json:"variance"`
	VariancePercentage decimal.Decimal `json:"variance_percentage"`
	Status             VarianceStatus  `json:"status"`
	Items              []CostItem      `json:"items"`
}

// RollupResult is the shipment-level reduction over the four categories.
//
// TotalQuotationValue (revenue) and TotalQuotationCost (budgeted cost) are
// different baselines: ProjectedMargin uses the former.
type RollupResult struct {
	TotalQuotationCost        decimal.Decimal `json:"total_quotation_cost"`
	TotalActualCost           decimal.Decimal `json:"total_actual_cost"`
	TotalVariance             decimal.Decimal `json:"total_variance"`
	TotalVariancePercentage   decimal.Decimal `json:"total_variance_percentage"`
	MarginImpact              decimal.Decimal `json:"margin_impact"`
	ProjectedMargin           decimal.Decimal `json:"projected_margin"`
	ProjectedMarginPercentage decimal.Decimal `json:"projected_margin_percentage"`
	OverallVarianceStatus     VarianceStatus  `json:"overall_variance_status"`
	WarningCategories         int             `json:"warning_categories"`
	CriticalCategories        int             `json:"critical_categories"`
}

// OperationalCostRecord tracks budgeted versus actual cost for one shipment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - categories, items and milestones are nested attribute maps/lists
//
// Derived fields (category variance/status and Totals) are persisted as computed.
type OperationalCostRecord struct {
	ID                   string                        `json:"id"`
	QuotationID          string                        `json:"quotation_id,omitempty"`
	QuotationNumber      string                        `json:"quotation_number,omitempty"`
	CustomerName         string                        `json:"customer_name,omitempty"`
	TotalQuotationValue  decimal.Decimal               `json:"total_quotation_value"`
	CostCategories       map[CategoryKey]CategoryState `json:"cost_categories"`
	Totals               RollupResult                  `json:"totals"`
	VarianceThresholds   VarianceThresholds            `json:"variance_thresholds"`
	CurrentApprovalStage int                           `json:"current_approval_stage"`
	Milestones           []Milestone                   `json:"milestones"`
	AWBIDs               []string                      `json:"awb_ids"`
	Status               RecordStatus                  `json:"status"`
	CreatedAt            time.Time                     `json:"created_at"`
	UpdatedAt            time.Time                     `json:"updated_at"`
}

// Clone returns a deep copy so reducers never share slices or maps with their input.
func (r OperationalCostRecord) Clone() OperationalCostRecord {
	out := r
	out.CostCategories = make(map[CategoryKey]CategoryState, len(r.CostCategories))
	for k, c := range r.CostCategories {
		out.CostCategories[k] = c.Clone()
	}
	if r.Milestones != nil {
		out.Milestones = make([]Milestone, len(r.Milestones))
		for i, m := range r.Milestones {
			out.Milestones[i] = m.clone()
		}
	}
	if r.AWBIDs != nil {
		out.AWBIDs = append([]string(nil), r.AWBIDs...)
	}
	return out
}

func (c CategoryState) Clone() CategoryState {
	out := c
	if c.Items != nil {
		out.Items = make([]CostItem, len(c.Items))
		for i, it := range c.Items {
			if it.DueDate != nil {
				d := *it.DueDate
				it.DueDate = &d
			}
			out.Items[i] = it
		}
	}
	return out
}
