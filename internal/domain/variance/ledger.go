package variance

import (
	"strings"
	"time"

	"freight_opcost/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CostItemDraft holds the descriptive fields of a new cost item. Amounts always
// start at zero and are set through updates.
type CostItemDraft struct {
	Description   string
	VendorName    string
	InvoiceNumber string
	DueDate       *time.Time
}

// CostItemUpdate is a single-field change of a cost item. The set of variants is
// closed: SetDescription, SetVendorName, SetAmount, SetActualAmount, SetApproved,
// SetInvoiceNumber and SetDueDate.
type CostItemUpdate interface {
	Field() string
	apply(it *entities.CostItem)
}

type SetDescription struct{ Value string }
type SetVendorName struct{ Value string }
type SetAmount struct{ Value decimal.Decimal }
type SetActualAmount struct{ Value decimal.Decimal }
type SetApproved struct{ Value bool }
type SetInvoiceNumber struct{ Value string }
type SetDueDate struct{ Value *time.Time }

func (SetDescription) Field() string   { return "description" }
func (SetVendorName) Field() string    { return "vendor_name" }
func (SetAmount) Field() string        { return "amount" }
func (SetActualAmount) Field() string  { return "actual_amount" }
func (SetApproved) Field() string      { return "approved" }
func (SetInvoiceNumber) Field() string { return "invoice_number" }
func (SetDueDate) Field() string       { return "due_date" }

func (u SetDescription) apply(it *entities.CostItem)   { it.Description = strings.TrimSpace(u.Value) }
func (u SetVendorName) apply(it *entities.CostItem)    { it.VendorName = strings.TrimSpace(u.Value) }
func (u SetApproved) apply(it *entities.CostItem)      { it.Approved = u.Value }
func (u SetInvoiceNumber) apply(it *entities.CostItem) { it.InvoiceNumber = strings.TrimSpace(u.Value) }

func (u SetAmount) apply(it *entities.CostItem) {
	it.Amount = u.Value
	*it = RecomputeItem(*it)
}

func (u SetActualAmount) apply(it *entities.CostItem) {
	it.ActualAmount = u.Value
	*it = RecomputeItem(*it)
}

func (u SetDueDate) apply(it *entities.CostItem) {
	if u.Value == nil {
		it.DueDate = nil
		return
	}
	d := u.Value.UTC()
	it.DueDate = &d
}

// AddItem appends a zero-amount item with a fresh id to the category.
func (e *Engine) AddItem(r entities.OperationalCostRecord, key entities.CategoryKey, draft CostItemDraft) (entities.OperationalCostRecord, entities.CostItem, error) {
	if !key.Valid() {
		return entities.OperationalCostRecord{}, entities.CostItem{}, ErrInvalidCategory
	}

	it := entities.CostItem{
		ID:                 e.newID(),
		Description:        strings.TrimSpace(draft.Description),
		VendorName:         strings.TrimSpace(draft.VendorName),
		Amount:             decimal.Zero,
		ActualAmount:       decimal.Zero,
		Variance:           decimal.Zero,
		VariancePercentage: decimal.Zero,
		InvoiceNumber:      strings.TrimSpace(draft.InvoiceNumber),
		CreatedAt:          e.now(),
	}
	SetDueDate{Value: draft.DueDate}.apply(&it)

	out := r.Clone()
	c := out.CostCategories[key]
	c.Items = append(c.Items, it)
	out.CostCategories[key] = c
	return e.commit(out), it, nil
}

// UpdateItem applies one field update to an item of the category.
func (e *Engine) UpdateItem(r entities.OperationalCostRecord, key entities.CategoryKey, itemID string, u CostItemUpdate) (entities.OperationalCostRecord, error) {
	if !key.Valid() {
		return entities.OperationalCostRecord{}, ErrInvalidCategory
	}
	if u == nil {
		return entities.OperationalCostRecord{}, ErrInvalidItemUpdate
	}

	out := r.Clone()
	c := out.CostCategories[key]
	idx := indexOfItem(c.Items, itemID)
	if idx < 0 {
		return entities.OperationalCostRecord{}, ErrCostItemNotFound
	}
	u.apply(&c.Items[idx])
	out.CostCategories[key] = c
	return e.commit(out), nil
}

// RemoveItem deletes an item by id. An unknown id leaves the record unchanged.
func (e *Engine) RemoveItem(r entities.OperationalCostRecord, key entities.CategoryKey, itemID string) (entities.OperationalCostRecord, error) {
	if !key.Valid() {
		return entities.OperationalCostRecord{}, ErrInvalidCategory
	}

	out := r.Clone()
	c := out.CostCategories[key]
	idx := indexOfItem(c.Items, itemID)
	if idx < 0 {
		return Recompute(out), nil
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	out.CostCategories[key] = c
	return e.commit(out), nil
}

// SetCategoryCosts is the manual entry mode: the category's items are replaced by a
// single item carrying both amounts, so the item sum stays canonical.
func (e *Engine) SetCategoryCosts(r entities.OperationalCostRecord, key entities.CategoryKey, quotationCost, actualCost decimal.Decimal) (entities.OperationalCostRecord, error) {
	if !key.Valid() {
		return entities.OperationalCostRecord{}, ErrInvalidCategory
	}

	out := r.Clone()
	c := out.CostCategories[key]
	c.Items = []entities.CostItem{{
		ID:           e.newID(),
		Description:  "Manual entry",
		Amount:       quotationCost,
		ActualAmount: actualCost,
		CreatedAt:    e.now(),
	}}
	out.CostCategories[key] = c
	return e.commit(out), nil
}

func indexOfItem(items []entities.CostItem, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
