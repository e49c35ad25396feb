package request

import (
	"strings"
	"time"

	"freight_opcost/internal/domain/entities"
	"freight_opcost/internal/domain/variance"
)

type MilestoneRequest struct {
	Title                string     `json:"title" binding:"required"`
	Description          string     `json:"description"`
	TargetDate           *time.Time `json:"target_date"`
	CompletedDate        *time.Time `json:"completed_date"`
	Status               string     `json:"status"`
	ResponsiblePerson    string     `json:"responsible_person"`
	CompletionPercentage int        `json:"completion_percentage"`
}

func (r MilestoneRequest) ResolveDraft() variance.MilestoneDraft {
	return variance.MilestoneDraft{
		Title:                r.Title,
		Description:          r.Description,
		TargetDate:           r.TargetDate,
		CompletedDate:        r.CompletedDate,
		Status:               entities.MilestoneStatus(strings.TrimSpace(r.Status)),
		ResponsiblePerson:    r.ResponsiblePerson,
		CompletionPercentage: r.CompletionPercentage,
	}
}
