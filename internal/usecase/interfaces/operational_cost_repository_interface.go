package interfaces

import (
	"context"
	"freight_opcost/internal/domain/entities"
)

//go:generate mockgen -source=operational_cost_repository_interface.go -destination=mocks/mock_operational_cost_repository.go -package=mock_interfaces

// IOperationalCostRepository abstracts the persistence store for operational cost records.
//
// Not-found is reported as a zero-value record (ID == "") or deleted == false,
// never as an error; the use case turns it into ErrRecordNotFound.

type IOperationalCostRepository interface {
	Create(ctx context.Context, r entities.OperationalCostRecord) (entities.OperationalCostRecord, error)
	GetByID(ctx context.Context, id string) (entities.OperationalCostRecord, error)
	List(ctx context.Context) ([]entities.OperationalCostRecord, error)
	Update(ctx context.Context, r entities.OperationalCostRecord) (entities.OperationalCostRecord, error)
	Delete(ctx context.Context, id string) (deleted bool, err error)
}
