package interfaces

import "stoploss_quoting/internal/domain/entities"

// IMetricsRecorder receives business events for the /metrics endpoint.
type IMetricsRecorder interface {
	QuoteGenerated(coverage entities.CoverageType, riskScore float64)
	UnderwritingDecision(decision entities.UnderwritingDecision, source string)
	PolicyBound()
	NarrativeGenerated(source entities.NarrativeSource)
}
