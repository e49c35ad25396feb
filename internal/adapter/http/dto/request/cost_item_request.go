package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"freight_opcost/internal/domain/variance"

	"github.com/shopspring/decimal"
)

var ErrUnknownItemField = errors.New("unknown cost item field")

type CostItemCreateRequest struct {
	Description   string     `json:"description"`
	VendorName    string     `json:"vendor_name"`
	InvoiceNumber string     `json:"invoice_number"`
	DueDate       *time.Time `json:"due_date"`
}

func (r CostItemCreateRequest) ResolveDraft() variance.CostItemDraft {
	return variance.CostItemDraft{
		Description:   r.Description,
		VendorName:    r.VendorName,
		InvoiceNumber: r.InvoiceNumber,
		DueDate:       r.DueDate,
	}
}

// CostItemUpdateRequest changes one field of a cost item:
//
//	{"field": "actual_amount", "value": "6000000"}
//
// Amounts accept JSON numbers or decimal strings; due_date accepts an RFC 3339
// string or null.
type CostItemUpdateRequest struct {
	Field string          `json:"field" binding:"required"`
	Value json.RawMessage `json:"value"`
}

func (r CostItemUpdateRequest) ResolveUpdate() (variance.CostItemUpdate, error) {
	field := strings.TrimSpace(r.Field)
	switch field {
	case "description", "vendor_name", "invoice_number":
		var s string
		if err := json.Unmarshal(r.rawValue(), &s); err != nil || r.isNull() {
			return nil, fmt.Errorf("%w: %s must be a string", ErrInvalidPayload, field)
		}
		switch field {
		case "description":
			return variance.SetDescription{Value: s}, nil
		case "vendor_name":
			return variance.SetVendorName{Value: s}, nil
		default:
			return variance.SetInvoiceNumber{Value: s}, nil
		}
	case "amount", "actual_amount":
		if r.isNull() {
			return nil, fmt.Errorf("%w: %s is required", variance.ErrInvalidAmount, field)
		}
		var d decimal.Decimal
		if err := json.Unmarshal(r.rawValue(), &d); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", variance.ErrInvalidAmount, field, err)
		}
		if field == "amount" {
			return variance.SetAmount{Value: d}, nil
		}
		return variance.SetActualAmount{Value: d}, nil
	case "approved":
		var b bool
		if err := json.Unmarshal(r.rawValue(), &b); err != nil || r.isNull() {
			return nil, fmt.Errorf("%w: approved must be a boolean", ErrInvalidPayload)
		}
		return variance.SetApproved{Value: b}, nil
	case "due_date":
		var t *time.Time
		if err := json.Unmarshal(r.rawValue(), &t); err != nil {
			return nil, fmt.Errorf("%w: due_date must be an RFC 3339 timestamp or null", ErrInvalidPayload)
		}
		return variance.SetDueDate{Value: t}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownItemField, field)
}

func (r CostItemUpdateRequest) rawValue() json.RawMessage {
	if len(r.Value) == 0 {
		return json.RawMessage("null")
	}
	return r.Value
}

func (r CostItemUpdateRequest) isNull() bool {
	return strings.TrimSpace(string(r.rawValue())) == "null"
}
