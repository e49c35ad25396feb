package entities

// ApprovalStage is one entry of the fixed approval catalog.
//
// A record's CurrentApprovalStage is a cursor into this catalog:
//   - 0 means no stage has been completed
//   - N (1..4) means stage N is complete
type ApprovalStage struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

const (
	ApprovalStageNotStarted          = 0
	ApprovalStageInitialReview       = 1
	ApprovalStageVarianceAnalysis    = 2
	ApprovalStageManagementApproval  = 3
	ApprovalStageFinalReconciliation = 4
	ApprovalStageTerminal            = ApprovalStageFinalReconciliation
)

var approvalStages = [...]ApprovalStage{
	{Index: ApprovalStageInitialReview, Name: "Initial Review", Description: "Cost entries checked against the quotation baseline", Required: true},
	{Index: ApprovalStageVarianceAnalysis, Name: "Variance Analysis", Description: "Category variances reviewed and explained", Required: true},
	{Index: ApprovalStageManagementApproval, Name: "Management Approval", Description: "Management sign-off on cost overruns", Required: true},
	{Index: ApprovalStageFinalReconciliation, Name: "Final Reconciliation", Description: "Invoices reconciled with actual costs", Required: false},
}

// ApprovalStages returns a copy of the process-wide stage catalog.
func ApprovalStages() []ApprovalStage {
	out := make([]ApprovalStage, len(approvalStages))
	copy(out, approvalStages[:])
	return out
}
