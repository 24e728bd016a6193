package interfaces

import (
	"context"

	"stoploss_quoting/internal/domain/entities"
)

// INarrativeGenerator turns a risk picture into underwriting prose.
//
// Implementations: the deterministic rules generator and the Gemini client.
type INarrativeGenerator interface {
	Generate(ctx context.Context, req entities.NarrativeRequest) (entities.Narrative, error)
}
