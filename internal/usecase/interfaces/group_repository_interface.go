package interfaces

import (
	"context"

	"stoploss_quoting/internal/domain/entities"
)

// IGroupRepository abstracts DynamoDB persistence for Group.
//
// Lookups by id return a zero-value Group (empty ID) when the item does not exist.
type IGroupRepository interface {
	Create(ctx context.Context, g entities.Group) (entities.Group, error)
	GetByID(ctx context.Context, id string) (entities.Group, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.Group, error)
	Update(ctx context.Context, g entities.Group) (entities.Group, error)
	Delete(ctx context.Context, id string) (bool, error)
}
