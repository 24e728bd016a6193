package interfaces

import (
	"context"

	"stoploss_quoting/internal/domain/entities"
)

// IPolicyRepository abstracts DynamoDB persistence for Policy.
//
// Create returns ErrAlreadyExists when the quote already has a policy.
type IPolicyRepository interface {
	Create(ctx context.Context, p entities.Policy) (entities.Policy, error)
	GetByID(ctx context.Context, id string) (entities.Policy, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.Policy, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.Policy, error)
	UpdateStatus(ctx context.Context, id string, status entities.PolicyStatus) (entities.Policy, error)
}
