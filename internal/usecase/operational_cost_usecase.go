package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"freight_opcost/internal/domain/entities"
	"freight_opcost/internal/domain/variance"
	"freight_opcost/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordNotFound     = errors.New("operational cost record not found")
	ErrInvalidRecordID    = errors.New("invalid operational cost record id")
	ErrQuotationNotFound  = errors.New("approved quotation not found")
	ErrInvalidAWBID       = variance.ErrInvalidAWBID
	ErrPersistenceFailure = errors.New("persistence failure")
	ErrApprovalBlocked    = errors.New("approval blocked by critical variance")
)

// IOperationalCostUseCase exposes the operational cost variance operations.
//
// Every mutation loads one record, reduces it through the variance engine and
// saves the result. A failed save leaves the stored record untouched.
type IOperationalCostUseCase interface {
	ListApprovedQuotations(ctx context.Context) ([]entities.Quotation, error)

	CreateRecord(ctx context.Context, in CreateRecordInput) (entities.OperationalCostRecord, error)
	GetByID(ctx context.Context, id string) (entities.OperationalCostRecord, error)
	List(ctx context.Context) ([]entities.OperationalCostRecord, error)
	Delete(ctx context.Context, id string) error
	GetVariance(ctx context.Context, id string) (VarianceReport, error)

	SelectQuotation(ctx context.Context, id, quotationID string) (entities.OperationalCostRecord, error)
	SetThresholds(ctx context.Context, id string, th entities.VarianceThresholds) (entities.OperationalCostRecord, error)
	SetStatus(ctx context.Context, id string, status entities.RecordStatus) (entities.OperationalCostRecord, error)
	AdvanceApproval(ctx context.Context, id string) (entities.OperationalCostRecord, error)
	RetreatApproval(ctx context.Context, id string) (entities.OperationalCostRecord, error)

	SetCategoryCosts(ctx context.Context, id string, key entities.CategoryKey, quotationCost, actualCost decimal.Decimal) (entities.OperationalCostRecord, error)
	AddCostItem(ctx context.Context, id string, key entities.CategoryKey, draft variance.CostItemDraft) (entities.OperationalCostRecord, entities.CostItem, error)
	UpdateCostItem(ctx context.Context, id string, key entities.CategoryKey, itemID string, u variance.CostItemUpdate) (entities.OperationalCostRecord, error)
	RemoveCostItem(ctx context.Context, id string, key entities.CategoryKey, itemID string) (entities.OperationalCostRecord, error)

	AddMilestone(ctx context.Context, id string, d variance.MilestoneDraft) (entities.OperationalCostRecord, entities.Milestone, error)
	UpdateMilestone(ctx context.Context, id, milestoneID string, d variance.MilestoneDraft) (entities.OperationalCostRecord, error)
	RemoveMilestone(ctx context.Context, id, milestoneID string) (entities.OperationalCostRecord, error)

	LinkAWB(ctx context.Context, id, awbID string) (entities.OperationalCostRecord, error)
	UnlinkAWB(ctx context.Context, id, awbID string) (entities.OperationalCostRecord, error)
	GetAWBSummary(ctx context.Context, id string) (AWBReport, error)
}

// Settings are the policy knobs read from configuration.
type Settings struct {
	DefaultThresholds entities.VarianceThresholds
	// BlockCriticalApproval refuses to advance into Management Approval while
	// the overall variance is Critical.
	BlockCriticalApproval bool
}

type CreateRecordInput struct {
	QuotationID string
	Thresholds  *entities.VarianceThresholds
}

// VarianceReport is the read model behind the variance view.
type VarianceReport struct {
	RecordID     string
	Categories   map[entities.CategoryKey]entities.CategoryState
	Totals       entities.RollupResult
	Thresholds   entities.VarianceThresholds
	PendingStage *entities.ApprovalStage
}

type AWBReport struct {
	RecordID string
	AWBs     []entities.AWBChargeRecord
	Summary  entities.AWBSummary
}

type OperationalCostUseCase struct {
	repo       interfaces.IOperationalCostRepository
	quotations interfaces.IQuotationStore
	awbs       interfaces.IAWBStore
	notifier   interfaces.INotificationSink
	engine     *variance.Engine
	settings   Settings
}

var _ IOperationalCostUseCase = (*OperationalCostUseCase)(nil)

// NewOperationalCostUseCase wires the collaborators. A nil engine falls back to
// variance.NewEngine(); a nil notifier disables notifications.
func NewOperationalCostUseCase(
	repo interfaces.IOperationalCostRepository,
	quotations interfaces.IQuotationStore,
	awbs interfaces.IAWBStore,
	notifier interfaces.INotificationSink,
	engine *variance.Engine,
	settings Settings,
) *OperationalCostUseCase {
	if engine == nil {
		engine = variance.NewEngine()
	}
	return &OperationalCostUseCase{
		repo:       repo,
		quotations: quotations,
		awbs:       awbs,
		notifier:   notifier,
		engine:     engine,
		settings:   settings,
	}
}

func (u *OperationalCostUseCase) ListApprovedQuotations(ctx context.Context) ([]entities.Quotation, error) {
	qs, err := u.quotations.GetApprovedQuotations(ctx)
	if err != nil {
		log.Printf("[opcost][usecase] list approved quotations failed err=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	if qs == nil {
		qs = []entities.Quotation{}
	}
	return qs, nil
}

func (u *OperationalCostUseCase) CreateRecord(ctx context.Context, in CreateRecordInput) (entities.OperationalCostRecord, error) {
	th := u.settings.DefaultThresholds
	if in.Thresholds != nil {
		th = *in.Thresholds
	}

	r, err := u.engine.NewRecord(th)
	if err != nil {
		return entities.OperationalCostRecord{}, err
	}

	if qid := strings.TrimSpace(in.QuotationID); qid != "" {
		q, err := u.findApprovedQuotation(ctx, qid)
		if err != nil {
			return entities.OperationalCostRecord{}, err
		}
		if r, err = u.engine.SelectQuotation(r, q); err != nil {
			return entities.OperationalCostRecord{}, err
		}
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.OperationalCostRecord{}, u.persistFailed(ctx, "create", r.ID, err)
	}
	u.notify(ctx, entities.NotificationSuccess, "create", created.ID, "Operational cost record created")
	return created, nil
}

func (u *OperationalCostUseCase) GetByID(ctx context.Context, id string) (entities.OperationalCostRecord, error) {
	return u.load(ctx, id)
}

func (u *OperationalCostUseCase) List(ctx context.Context) ([]entities.OperationalCostRecord, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		log.Printf("[opcost][usecase] list records failed err=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	out := make([]entities.OperationalCostRecord, 0, len(items))
	for _, r := range items {
		out = append(out, variance.Recompute(r))
	}
	return out, nil
}

func (u *OperationalCostUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRecordID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return u.persistFailed(ctx, "delete", id, err)
	}
	if !deleted {
		return ErrRecordNotFound
	}
	u.notify(ctx, entities.NotificationSuccess, "delete", id, "Operational cost record deleted")
	return nil
}

func (u *OperationalCostUseCase) GetVariance(ctx context.Context, id string) (VarianceReport, error) {
	r, err := u.load(ctx, id)
	if err != nil {
		return VarianceReport{}, err
	}
	rep := VarianceReport{
		RecordID:   r.ID,
		Categories: r.CostCategories,
		Totals:     r.Totals,
		Thresholds: r.VarianceThresholds,
	}
	if stage, ok := variance.PendingStage(r.CurrentApprovalStage); ok {
		rep.PendingStage = &stage
	}
	return rep, nil
}

func (u *OperationalCostUseCase) SelectQuotation(ctx context.Context, id, quotationID string) (entities.OperationalCostRecord, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.OperationalCostRecord{}, ErrQuotationNotFound
	}
	current, err := u.load(ctx, id)
	if err != nil {
		return entities.OperationalCostRecord{}, err
	}
	q, err := u.findApprovedQuotation(ctx, quotationID)
	if err != nil {
		return entities.OperationalCostRecord{}, err
	}
	next, err := u.engine.SelectQuotation(current, q)
	if err != nil {
		return entities.OperationalCostRecord{}, err
	}
	return u.save(ctx, "select_quotation", next)
}

func (u *OperationalCostUseCase) SetThresholds(ctx context.Context, id string, th entities.VarianceThresholds) (entities.OperationalCostRecord, error) {
	return u.mutate(ctx, id, "set_thresholds", func(r entities.OperationalCostRecord) (entities.OperationalCostRecord, error) {
		return u.engine.SetThresholds(r, th)
	})
}

func (u *OperationalCostUseCase) SetStatus(ctx context.Context, id string, status entities.RecordStatus) (entities.OperationalCostRecord, error) {
	return u.mutate(ctx, id, "set_status", func(r entities.OperationalCostRecord) (entities.OperationalCostRecord, error) {
		return u.engine.SetStatus(r, status)
	})
}

func (u *OperationalCostUseCase) AdvanceApproval(ctx context.Context, id string) (entities.OperationalCostRecord, error) {
	current, err := u.load(ctx, id)
	if err != nil {
		return entities.OperationalCostRecord{}, err
	}
	if u.settings.BlockCriticalApproval &&
		current.CurrentApprovalStage == entities.ApprovalStageVarianceAnalysis &&
		current.Totals.OverallVarianceStatus == entities.VarianceStatusCritical {
		log.Printf("[opcost][usecase] approval blocked id=%s stage=%d", current.ID, current.CurrentApprovalStage)
		return entities.OperationalCostRecord{}, ErrApprovalBlocked
	}
	return u.moveApproval(ctx, "advance_approval", current, u.engine.AdvanceApproval(current))
}

func (u *OperationalCostUseCase) RetreatApproval(ctx context.Context, id string) (entities.OperationalCostRecord, error) {
	current, err := u.load(ctx, id)
	if err != nil {
		return entities.OperationalCostRecord{}, err
	}
	return u.moveApproval(ctx, "retreat_approval", current, u.engine.RetreatApproval(current))
}

// moveApproval skips the write when the cursor is already at a bound.
func (u *OperationalCostUseCase) moveApproval(ctx context.Context, action string, current, next entities.OperationalCostRecord) (entities.OperationalCostRecord, error) {
	if next.CurrentApprovalStage == current.CurrentApprovalStage {
		return next, nil
	}
	return u.save(ctx, action, next)
}

func (u *OperationalCostUseCase) SetCategoryCosts(ctx context.Context, id string, key entities.CategoryKey, quotationCost, actualCost decimal.Decimal) (entities.OperationalCostRecord, error) {
	if !key.Valid() {
		return entities.OperationalCostRecord{}, variance.ErrInvalidCategory
	}
	return u.mutate(ctx, id, "set_category_costs", func(r entities.OperationalCostRecord) (entities.OperationalCostRecord, error) {
		return u.engine.SetCategoryCosts(r, key, quotationCost, actualCost)
	})
}

func (u *OperationalCostUseCase) AddCostItem(ctx context.Context, id string, key entities.CategoryKey, draft variance.CostItemDraft) (entities.OperationalCostRecord, entities.CostItem, error) {
	if !key.Valid() {
		return entities.OperationalCostRecord{}, entities.CostItem{}, variance.ErrInvalidCategory
	}
	var added entities.CostItem
	saved, err := u.mutate(ctx, id, "add_cost_item", func(r entities.OperationalCostRecord) (entities.OperationalCostRecord, error) {
		next, item, err := u.engine.AddItem(r, key, draft)
		added = item
		return next, err
	})
	if err != nil {
		return entities.OperationalCostRecord{}, entities.CostItem{}, err
	}
	return saved, added, nil
}

func (u *OperationalCostUseCase) UpdateCostItem(ctx context.Context, id string, key entities.CategoryKey, itemID string, upd variance.CostItemUpdate) (entities.OperationalCostRecord, error) {
	if !key.Valid() {
		return entities.OperationalCostRecord{}, variance.ErrInvalidCategory
	}
	return u.mutate(ctx, id, "update_cost_item", func(r entities.OperationalCostRecord) (entities.OperationalCostRecord, error) {
		return u.engine.UpdateItem(r, key, strings.TrimSpace(itemID), upd)
	})
}

func (u *OperationalCostUseCase) RemoveCostItem(ctx context.Context, id string, key entities.CategoryKey, itemID string) (entities.OperationalCostRecord, error) {
	if !key.Valid() {
		return entities.OperationalCostRecord{}, variance.ErrInvalidCategory
	}
	return u.mutate(ctx, id, "remove_cost_item", func(r entities.OperationalCostRecord) (entities.OperationalCostRecord, error) {
		return u.engine.RemoveItem(r, key, strings.TrimSpace(itemID))
	})
}

func (u *OperationalCostUseCase) AddMilestone(ctx context.Context, id string, d variance.MilestoneDraft) (entities.OperationalCostRecord, entities.Milestone, error) {
	var added entities.Milestone
	saved, err := u.mutate(ctx, id, "add_milestone", func(r entities.OperationalCostRecord) (entities.OperationalCostRecord, error) {
		next, m, err := u.engine.AddMilestone(r, d)
		added = m
		return next, err
	})
	if err != nil {
		return entities.OperationalCostRecord{}, entities.Milestone{}, err
	}
	return saved, added, nil
}

func (u *OperationalCostUseCase) UpdateMilestone(ctx context.Context, id, milestoneID string, d variance.MilestoneDraft) (entities.OperationalCostRecord, error) {
	return u.mutate(ctx, id, "update_milestone", func(r entities.OperationalCostRecord) (entities.OperationalCostRecord, error) {
		return u.engine.UpdateMilestone(r, strings.TrimSpace(milestoneID), d)
	})
}

func (u *OperationalCostUseCase) RemoveMilestone(ctx context.Context, id, milestoneID string) (entities.OperationalCostRecord, error) {
	return u.mutate(ctx, id, "remove_milestone", func(r entities.OperationalCostRecord) (entities.OperationalCostRecord, error) {
		return u.engine.RemoveMilestone(r, strings.TrimSpace(milestoneID))
	})
}

func (u *OperationalCostUseCase) LinkAWB(ctx context.Context, id, awbID string) (entities.OperationalCostRecord, error) {
	if strings.TrimSpace(awbID) == "" {
		return entities.OperationalCostRecord{}, ErrInvalidAWBID
	}
	return u.mutate(ctx, id, "link_awb", func(r entities.OperationalCostRecord) (entities.OperationalCostRecord, error) {
		return u.engine.LinkAWB(r, awbID)
	})
}

func (u *OperationalCostUseCase) UnlinkAWB(ctx context.Context, id, awbID string) (entities.OperationalCostRecord, error) {
	if strings.TrimSpace(awbID) == "" {
		return entities.OperationalCostRecord{}, ErrInvalidAWBID
	}
	return u.mutate(ctx, id, "unlink_awb", func(r entities.OperationalCostRecord) (entities.OperationalCostRecord, error) {
		return u.engine.UnlinkAWB(r, awbID)
	})
}

func (u *OperationalCostUseCase) GetAWBSummary(ctx context.Context, id string) (AWBReport, error) {
	r, err := u.load(ctx, id)
	if err != nil {
		return AWBReport{}, err
	}

	all, err := u.awbs.GetAll(ctx)
	if err != nil {
		log.Printf("[opcost][usecase] load awbs failed id=%s err=%v", r.ID, err)
		u.notify(ctx, entities.NotificationError, "awb_summary", r.ID, "Could not load AWB charges")
		return AWBReport{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	linked := variance.LinkedAWBs(all, r.AWBIDs)
	rep := AWBReport{
		RecordID: r.ID,
		AWBs:     linked,
		Summary:  variance.SummarizeAWBs(linked),
	}
	u.notify(ctx, entities.NotificationSuccess, "awb_summary", r.ID, fmt.Sprintf("AWB summary computed for %d AWBs", len(linked)))
	return rep, nil
}

func (u *OperationalCostUseCase) findApprovedQuotation(ctx context.Context, quotationID string) (entities.Quotation, error) {
	qs, err := u.quotations.GetApprovedQuotations(ctx)
	if err != nil {
		log.Printf("[opcost][usecase] load quotations failed quotation_id=%s err=%v", quotationID, err)
		return entities.Quotation{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	for _, q := range qs {
		if q.ID == quotationID {
			return q, nil
		}
	}
	return entities.Quotation{}, ErrQuotationNotFound
}

// load returns the stored record with derived fields recomputed, so records
// written by older versions are always consistent.
func (u *OperationalCostUseCase) load(ctx context.Context, id string) (entities.OperationalCostRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OperationalCostRecord{}, ErrInvalidRecordID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[opcost][usecase] load record failed id=%s err=%v", id, err)
		return entities.OperationalCostRecord{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	if r.ID == "" {
		return entities.OperationalCostRecord{}, ErrRecordNotFound
	}
	return variance.Recompute(r), nil
}

func (u *OperationalCostUseCase) mutate(
	ctx context.Context,
	id, action string,
	fn func(entities.OperationalCostRecord) (entities.OperationalCostRecord, error),
) (entities.OperationalCostRecord, error) {
	current, err := u.load(ctx, id)
	if err != nil {
		return entities.OperationalCostRecord{}, err
	}
	next, err := fn(current)
	if err != nil {
		return entities.OperationalCostRecord{}, err
	}
	return u.save(ctx, action, next)
}

func (u *OperationalCostUseCase) save(ctx context.Context, action string, r entities.OperationalCostRecord) (entities.OperationalCostRecord, error) {
	saved, err := u.repo.Update(ctx, r)
	if err != nil {
		return entities.OperationalCostRecord{}, u.persistFailed(ctx, action, r.ID, err)
	}
	if saved.ID == "" {
		return entities.OperationalCostRecord{}, ErrRecordNotFound
	}
	u.notify(ctx, entities.NotificationSuccess, action, saved.ID, "Operational cost record saved")
	return saved, nil
}

func (u *OperationalCostUseCase) persistFailed(ctx context.Context, action, id string, err error) error {
	log.Printf("[opcost][usecase] persist failed action=%s id=%s err=%v", action, id, err)
	u.notify(ctx, entities.NotificationError, action, id, "Could not save operational cost record")
	return fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
}

func (u *OperationalCostUseCase) notify(ctx context.Context, level entities.NotificationLevel, action, recordID, msg string) {
	if u.notifier == nil {
		return
	}
	u.notifier.Notify(ctx, entities.Notification{
		Level:     level,
		Action:    action,
		RecordID:  recordID,
		Message:   msg,
		CreatedAt: u.engine.Now(),
	})
}
