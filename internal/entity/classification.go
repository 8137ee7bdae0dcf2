// Structure of the Empowerment-Classification Model in Uplift.

package entity

// EmpowermentClassification tags a request by the social-service domains it touches.
// Categories are not mutually exclusive, a path may match several at once.
type EmpowermentClassification struct {
	SocialSecurity    bool `json:"socialSecurity"`
	Housing           bool `json:"housing"`
	BusinessFunding   bool `json:"businessFunding"`
	Jobs              bool `json:"jobs"`
	NonDiscrimination bool `json:"nonDiscrimination"`
	Accessibility     bool `json:"accessibility"`
	AIAssistance      bool `json:"aiAssistance"`
}

// Any reports whether at least one category flag is set.
func (c EmpowermentClassification) Any() bool {
	return c.SocialSecurity || c.Housing || c.BusinessFunding || c.Jobs ||
		c.NonDiscrimination || c.Accessibility || c.AIAssistance
}
