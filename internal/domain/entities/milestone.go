package entities

import "time"

type MilestoneStatus string

const (
	MilestoneStatusPending    MilestoneStatus = "Pending"
	MilestoneStatusInProgress MilestoneStatus = "InProgress"
	MilestoneStatusCompleted  MilestoneStatus = "Completed"
	MilestoneStatusDelayed    MilestoneStatus = "Delayed"
)

func (s MilestoneStatus) Valid() bool {
	switch s {
	case MilestoneStatusPending, MilestoneStatusInProgress, MilestoneStatusCompleted, MilestoneStatusDelayed:
		return true
	}
	return false
}

// Milestone is an audit-only checkpoint of a shipment; variance math never reads it.
type Milestone struct {
	ID                   string          `json:"id"`
	Title                string          `json:"title"`
	Description          string          `json:"description"`
	TargetDate           *time.Time      `json:"target_date,omitempty"`
	CompletedDate        *time.Time      `json:"completed_date,omitempty"`
	Status               MilestoneStatus `json:"status"`
	ResponsiblePerson    string          `json:"responsible_person"`
	CompletionPercentage int             `json:"completion_percentage"`
}

func (m Milestone) clone() Milestone {
	if m.TargetDate != nil {
		d := *m.TargetDate
		m.TargetDate = &d
	}
	if m.CompletedDate != nil {
		d := *m.CompletedDate
		m.CompletedDate = &d
	}
	return m
}
