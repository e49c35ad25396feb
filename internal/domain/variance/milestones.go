package variance

import (
	"strings"
	"time"

	"freight_opcost/internal/domain/entities"
)

// MilestoneDraft carries the editable milestone fields for add and update.
type MilestoneDraft struct {
	Title                string
	Description          string
	TargetDate           *time.Time
	CompletedDate        *time.Time
	Status               entities.MilestoneStatus
	ResponsiblePerson    string
	CompletionPercentage int
}

func (d MilestoneDraft) validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrInvalidMilestone
	}
	if d.Status != "" && !d.Status.Valid() {
		return ErrInvalidMilestone
	}
	if d.CompletionPercentage < 0 || d.CompletionPercentage > 100 {
		return ErrInvalidCompletion
	}
	return nil
}

func (d MilestoneDraft) applyTo(m *entities.Milestone) {
	m.Title = strings.TrimSpace(d.Title)
	m.Description = strings.TrimSpace(d.Description)
	m.TargetDate = utcPtr(d.TargetDate)
	m.CompletedDate = utcPtr(d.CompletedDate)
	m.Status = d.Status
	if m.Status == "" {
		m.Status = entities.MilestoneStatusPending
	}
	m.ResponsiblePerson = strings.TrimSpace(d.ResponsiblePerson)
	m.CompletionPercentage = d.CompletionPercentage
}

func (e *Engine) AddMilestone(r entities.OperationalCostRecord, d MilestoneDraft) (entities.OperationalCostRecord, entities.Milestone, error) {
	if err := d.validate(); err != nil {
		return entities.OperationalCostRecord{}, entities.Milestone{}, err
	}
	m := entities.Milestone{ID: e.newID()}
	d.applyTo(&m)

	out := r.Clone()
	out.Milestones = append(out.Milestones, m)
	return e.commit(out), m, nil
}

func (e *Engine) UpdateMilestone(r entities.OperationalCostRecord, milestoneID string, d MilestoneDraft) (entities.OperationalCostRecord, error) {
	if err := d.validate(); err != nil {
		return entities.OperationalCostRecord{}, err
	}
	out := r.Clone()
	for i := range out.Milestones {
		if out.Milestones[i].ID == milestoneID {
			d.applyTo(&out.Milestones[i])
			return e.commit(out), nil
		}
	}
	return entities.OperationalCostRecord{}, ErrMilestoneNotFound
}

func (e *Engine) RemoveMilestone(r entities.OperationalCostRecord, milestoneID string) (entities.OperationalCostRecord, error) {
	out := r.Clone()
	for i := range out.Milestones {
		if out.Milestones[i].ID == milestoneID {
			out.Milestones = append(out.Milestones[:i], out.Milestones[i+1:]...)
			return e.commit(out), nil
		}
	}
	return entities.OperationalCostRecord{}, ErrMilestoneNotFound
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
