package variance

import (
	"testing"

	"freight_opcost/internal/domain/entities"
)

func TestStageBounds(t *testing.T) {
	stage := entities.ApprovalStageNotStarted
	for i := 0; i < 10; i++ {
		stage = AdvanceStage(stage)
		if stage > entities.ApprovalStageTerminal {
			t.Fatalf("advanced past terminal: %d", stage)
		}
	}
	if stage != entities.ApprovalStageTerminal {
		t.Fatalf("stage=%d, want %d", stage, entities.ApprovalStageTerminal)
	}

	for i := 0; i < 10; i++ {
		stage = RetreatStage(stage)
		if stage < 0 {
			t.Fatalf("retreated below zero: %d", stage)
		}
	}
	if stage != entities.ApprovalStageNotStarted {
		t.Fatalf("stage=%d, want 0", stage)
	}
}

func TestStageSteps(t *testing.T) {
	if got := AdvanceStage(1); got != 2 {
		t.Fatalf("AdvanceStage(1)=%d, want 2", got)
	}
	if got := RetreatStage(3); got != 2 {
		t.Fatalf("RetreatStage(3)=%d, want 2", got)
	}
	if got := AdvanceStage(-3); got != 1 {
		t.Fatalf("AdvanceStage(-3)=%d, want 1", got)
	}
	if got := RetreatStage(9); got != 3 {
		t.Fatalf("RetreatStage(9)=%d, want 3", got)
	}
}

func TestPendingStage(t *testing.T) {
	s, ok := PendingStage(0)
	if !ok || s.Name != "Initial Review" || !s.Required {
		t.Fatalf("unexpected pending stage at 0: %+v ok=%v", s, ok)
	}
	s, ok = PendingStage(3)
	if !ok || s.Name != "Final Reconciliation" || s.Required {
		t.Fatalf("unexpected pending stage at 3: %+v ok=%v", s, ok)
	}
	if _, ok := PendingStage(4); ok {
		t.Fatalf("expected no pending stage at terminal")
	}
}

func TestEngine_ApprovalCursor(t *testing.T) {
	e := newTestEngine()
	r := newTestRecord(t, e)

	next := e.AdvanceApproval(r)
	if next.CurrentApprovalStage != 1 || r.CurrentApprovalStage != 0 {
		t.Fatalf("advance should return a new record: in=%d out=%d", r.CurrentApprovalStage, next.CurrentApprovalStage)
	}
	back := e.RetreatApproval(e.RetreatApproval(next))
	if back.CurrentApprovalStage != 0 {
		t.Fatalf("stage=%d, want 0", back.CurrentApprovalStage)
	}
}
