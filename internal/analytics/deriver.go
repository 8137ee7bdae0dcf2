// Impact metric derivation in Uplift.

package analytics

import "Uplift/internal/entity"

// DeriveImpact computes the derived impact indicators of an event from its
// outcome and classification. Pure boolean rules, several indicators may be
// true for the same event.
func DeriveImpact(classification entity.EmpowermentClassification, outcome entity.Outcome) entity.ImpactIndicators {
	return entity.ImpactIndicators{
		BarrierReduced:      outcome.Success && classification.Any(),
		OpportunityAccessed: outcome.Success && (classification.Jobs || classification.BusinessFunding),
		SupportProvided:     outcome.Success && (classification.AIAssistance || classification.Accessibility),
	}
}
