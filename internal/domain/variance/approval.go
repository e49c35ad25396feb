package variance

import "freight_opcost/internal/domain/entities"

func clampStage(stage int) int {
	switch {
	case stage < entities.ApprovalStageNotStarted:
		return entities.ApprovalStageNotStarted
	case stage > entities.ApprovalStageTerminal:
		return entities.ApprovalStageTerminal
	}
	return stage
}

// AdvanceStage moves the approval cursor forward by one. At the terminal stage it
// is a no-op.
func AdvanceStage(stage int) int {
	stage = clampStage(stage)
	if stage == entities.ApprovalStageTerminal {
		return stage
	}
	return stage + 1
}

// RetreatStage moves the approval cursor back by one, never below zero.
func RetreatStage(stage int) int {
	stage = clampStage(stage)
	if stage == entities.ApprovalStageNotStarted {
		return stage
	}
	return stage - 1
}

// PendingStage returns the catalog stage waiting for approval; false once the
// terminal stage is complete.
func PendingStage(stage int) (entities.ApprovalStage, bool) {
	stage = clampStage(stage)
	if stage == entities.ApprovalStageTerminal {
		return entities.ApprovalStage{}, false
	}
	return entities.ApprovalStages()[stage], true
}
