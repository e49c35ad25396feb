package response

import (
	"time"

	"freight_opcost/internal/domain/entities"
	"freight_opcost/internal/domain/variance"

	"github.com/shopspring/decimal"
)

type CostItemResponse struct {
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

// CategoryResponse is one cost bucket; categories are always listed in the
// fixed order origin, freight, destination, additional.
type CategoryResponse struct {
	Key                string             `json:"key"`
	QuotationCost      decimal.Decimal    `json:"quotation_cost"`
	ActualCost         decimal.Decimal    `json:"actual_cost"`
	Variance           decimal.Decimal    `json:"variance"`
	VariancePercentage decimal.Decimal    `json:"variance_percentage"`
	Status             string             `json:"status"`
	Items              []CostItemResponse `json:"items"`
}

type TotalsResponse struct {
	TotalQuotationCost        decimal.Decimal `json:"total_quotation_cost"`
	TotalActualCost           decimal.Decimal `json:"total_actual_cost"`
	TotalVariance             decimal.Decimal `json:"total_variance"`
	TotalVariancePercentage   decimal.Decimal `json:"total_variance_percentage"`
	MarginImpact              decimal.Decimal `json:"margin_impact"`
	ProjectedMargin           decimal.Decimal `json:"projected_margin"`
	ProjectedMarginPercentage decimal.Decimal `json:"projected_margin_percentage"`
	OverallVarianceStatus     string          `json:"overall_variance_status"`
	WarningCategories         int             `json:"warning_categories"`
	CriticalCategories        int             `json:"critical_categories"`
}

type ThresholdsResponse struct {
	Warning  decimal.Decimal `json:"warning"`
	Critical decimal.Decimal `json:"critical"`
}

type MilestoneResponse struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	TargetDate           *time.Time `json:"target_date,omitempty"`
	CompletedDate        *time.Time `json:"completed_date,omitempty"`
	Status               string     `json:"status"`
	ResponsiblePerson    string     `json:"responsible_person"`
	CompletionPercentage int        `json:"completion_percentage"`
}

type OperationalCostResponse struct {
	ID                   string                 `json:"id"`
	QuotationID          string                 `json:"quotation_id"`
	QuotationNumber      string                 `json:"quotation_number"`
	CustomerName         string                 `json:"customer_name"`
	TotalQuotationValue  decimal.Decimal        `json:"total_quotation_value"`
	Categories           []CategoryResponse     `json:"cost_categories"`
	Totals               TotalsResponse         `json:"totals"`
	VarianceThresholds   ThresholdsResponse     `json:"variance_thresholds"`
	CurrentApprovalStage int                    `json:"current_approval_stage"`
	PendingApprovalStage *ApprovalStageResponse `json:"pending_approval_stage,omitempty"`
	Milestones           []MilestoneResponse    `json:"milestones"`
	AWBIDs               []string               `json:"awb_ids"`
	Status               string                 `json:"status"`
	CreatedAt            time.Time              `json:"created_at"`
	UpdatedAt            time.Time              `json:"updated_at"`
}

func FromRecord(r entities.OperationalCostRecord) OperationalCostResponse {
	res := OperationalCostResponse{
		ID:                   r.ID,
		QuotationID:          r.QuotationID,
		QuotationNumber:      r.QuotationNumber,
		CustomerName:         r.CustomerName,
		TotalQuotationValue:  r.TotalQuotationValue,
		Categories:           FromCategories(r.CostCategories),
		Totals:               FromTotals(r.Totals),
		VarianceThresholds:   FromThresholds(r.VarianceThresholds),
		CurrentApprovalStage: r.CurrentApprovalStage,
		Milestones:           make([]MilestoneResponse, 0, len(r.Milestones)),
		AWBIDs:               append([]string{}, r.AWBIDs...),
		Status:               string(r.Status),
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
	if stage, ok := variance.PendingStage(r.CurrentApprovalStage); ok {
		s := FromApprovalStage(stage)
		res.PendingApprovalStage = &s
	}
	for _, m := range r.Milestones {
		res.Milestones = append(res.Milestones, FromMilestone(m))
	}
	return res
}

func FromRecords(rs []entities.OperationalCostRecord) []OperationalCostResponse {
	out := make([]OperationalCostResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRecord(r))
	}
	return out
}

func FromCategories(categories map[entities.CategoryKey]entities.CategoryState) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(entities.CategoryKeys()))
	for _, key := range entities.CategoryKeys() {
		c := categories[key]
		cr := CategoryResponse{
			Key:                string(key),
			QuotationCost:      c.QuotationCost,
			ActualCost:         c.ActualCost,
			Variance:           c.Variance,
			VariancePercentage: c.VariancePercentage,
			Status:             string(c.Status),
			Items:              make([]CostItemResponse, 0, len(c.Items)),
		}
		for _, it := range c.Items {
			cr.Items = append(cr.Items, FromCostItem(it))
		}
		out = append(out, cr)
	}
	return out
}

func FromCostItem(it entities.CostItem) CostItemResponse {
	return CostItemResponse{
		ID:                 it.ID,
		Description:        it.Description,
		VendorName:         it.VendorName,
		Amount:             it.Amount,
		ActualAmount:       it.ActualAmount,
		Variance:           it.Variance,
		VariancePercentage: it.VariancePercentage,
		Approved:           it.Approved,
		InvoiceNumber:      it.InvoiceNumber,
		DueDate:            it.DueDate,
		CreatedAt:          it.CreatedAt,
	}
}

func FromTotals(t entities.RollupResult) TotalsResponse {
	return TotalsResponse{
		TotalQuotationCost:        t.TotalQuotationCost,
		TotalActualCost:           t.TotalActualCost,
		TotalVariance:             t.TotalVariance,
		TotalVariancePercentage:   t.TotalVariancePercentage,
		MarginImpact:              t.MarginImpact,
		ProjectedMargin:           t.ProjectedMargin,
		ProjectedMarginPercentage: t.ProjectedMarginPercentage,
		OverallVarianceStatus:     string(t.OverallVarianceStatus),
		WarningCategories:         t.WarningCategories,
		CriticalCategories:        t.CriticalCategories,
	}
}

func FromThresholds(th entities.VarianceThresholds) ThresholdsResponse {
	return ThresholdsResponse{Warning: th.Warning, Critical: th.Critical}
}

func FromMilestone(m entities.Milestone) MilestoneResponse {
	return MilestoneResponse{
		ID:                   m.ID,
		Title:                m.Title,
		Description:          m.Description,
		TargetDate:           m.TargetDate,
		CompletedDate:        m.CompletedDate,
		Status:               string(m.Status),
		ResponsiblePerson:    m.ResponsiblePerson,
		CompletionPercentage: m.CompletionPercentage,
	}
}

type CostItemCreatedResponse struct {
	Item   CostItemResponse        `json:"item"`
	Record OperationalCostResponse `json:"record"`
}

type MilestoneCreatedResponse struct {
	Milestone MilestoneResponse       `json:"milestone"`
	Record    OperationalCostResponse `json:"record"`
}
