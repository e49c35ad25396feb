package interfaces

import (
	"context"
	"freight_opcost/internal/domain/entities"
)

//go:generate mockgen -source=awb_store_interface.go -destination=mocks/mock_awb_store.go -package=mock_interfaces

// IAWBStore supplies AWB charge records. Filtering by the ids linked to a record
// is done by the caller.
type IAWBStore interface {
	GetAll(ctx context.Context) ([]entities.AWBChargeRecord, error)
}
