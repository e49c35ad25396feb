package interfaces

import (
	"context"
	"freight_opcost/internal/domain/entities"
)

//go:generate mockgen -source=quotation_store_interface.go -destination=mocks/mock_quotation_store.go -package=mock_interfaces

// IQuotationStore supplies the approved quotations used as cost baselines.
type IQuotationStore interface {
	GetApprovedQuotations(ctx context.Context) ([]entities.Quotation, error)
}
