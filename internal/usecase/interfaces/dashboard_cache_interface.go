package interfaces

import (
	"context"

	"stoploss_quoting/internal/domain/entities"
)

// IDashboardCache keeps computed dashboard metrics per tenant for a short TTL.
type IDashboardCache interface {
	Get(ctx context.Context, tenantID string) (entities.DashboardMetrics, bool, error)
	Set(ctx context.Context, tenantID string, metrics entities.DashboardMetrics) error
}
