package entities

import "github.com/shopspring/decimal"

// QuotationStatusApproved is the only quotation status the variance engine accepts
// as a baseline.
const QuotationStatusApproved = "approved"

// CargoItem is one cargo line of a quotation. The per-leg costs seed the
// quotation cost of the matching category when the quotation is selected.
type CargoItem struct {
	Description     string          `json:"description"`
	Quantity        int             `json:"quantity"`
	Weight          decimal.Decimal `json:"weight"`
	OriginCost      decimal.Decimal `json:"origin_cost"`
	FreightCost     decimal.Decimal `json:"freight_cost"`
	DestinationCost decimal.Decimal `json:"destination_cost"`
	AdditionalCost  decimal.Decimal `json:"additional_cost"`
}

// Quotation is the approved sales estimate supplied by the quotation store.
//
// SellingPrice is revenue; the cargo leg costs are budgeted cost.
type Quotation struct {
	ID              string          `json:"id"`
	QuotationNumber string          `json:"quotation_number"`
	CustomerName    string          `json:"customer_name"`
	CustomerID      string          `json:"customer_id"`
	Origin          string          `json:"origin"`
	Destination     string          `json:"destination"`
	SellingPrice    decimal.Decimal `json:"selling_price"`
	Status          string          `json:"status"`
	CargoItems      []CargoItem     `json:"cargo_items"`
}
