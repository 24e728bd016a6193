package interfaces

import "stoploss_quoting/internal/domain/entities"

// IRiskAssessor scores a group. Implemented by riskscoring.Engine.
type IRiskAssessor interface {
	Assess(group entities.Group, members []entities.Member) entities.RiskAssessment
}
