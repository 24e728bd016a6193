package interfaces

import (
	"context"

	"stoploss_quoting/internal/domain/entities"
)

// IMemberRepository abstracts DynamoDB persistence for Member.
type IMemberRepository interface {
	Create(ctx context.Context, member entities.Member) (entities.Member, error)
	// BatchCreate writes all members or returns the first unrecoverable error.
	BatchCreate(ctx context.Context, members []entities.Member) error
	GetByID(ctx context.Context, id string) (entities.Member, error)
	ListByGroupID(ctx context.Context, groupID string) ([]entities.Member, error)
	Update(ctx context.Context, member entities.Member) (entities.Member, error)
}
