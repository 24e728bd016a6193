package response

import "stoploss_quoting/internal/domain/entities"

type NarrativeResponse struct {
	Summary        string   `json:"summary"`
	KeyDrivers     []string `json:"key_drivers"`
	Recommendation string   `json:"recommendation"`
	GeneratedBy    string   `json:"generated_by"`
}

func FromNarrative(n entities.Narrative) NarrativeResponse {
	return NarrativeResponse{
		Summary:        n.Summary,
		KeyDrivers:     emptyIfNil(n.KeyDrivers),
		Recommendation: n.Recommendation,
		GeneratedBy:    string(n.GeneratedBy),
	}
}
