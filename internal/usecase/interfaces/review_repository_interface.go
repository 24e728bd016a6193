package interfaces

import (
	"context"

	"stoploss_quoting/internal/domain/entities"
)

// IReviewRepository stores the latest underwriting review per quote.
type IReviewRepository interface {
	// Save creates or replaces the review of r.QuoteID.
	Save(ctx context.Context, r entities.Review) (entities.Review, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.Review, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.Review, error)
}
