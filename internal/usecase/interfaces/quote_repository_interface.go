package interfaces

import (
	"context"

	"stoploss_quoting/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// UpdateStatus never modifies a bound quote: it returns ErrImmutable instead,
// and a zero-value Quote when the id does not exist.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus, notes string) (entities.Quote, error)
}
