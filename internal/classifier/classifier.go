// Empowerment classifier of Uplift.
// Maps a request path onto the fixed set of empowerment categories through a
// static keyword rule table. This is the one piece of domain knowledge the
// pipeline owns, everything else treats the flags as opaque.

package classifier

import (
	"Uplift/internal/entity"
	"strings"
)

// Keyword rule lists per category. Rules are independent and order-free,
// keywords are shared across categories on purpose ("/assistance" counts as
// both social-security and AI assistance).
var (
	socialSecurityKeywords    = []string{"/social-security", "/benefits", "/assistance"}
	housingKeywords           = []string{"/housing", "/accommodation", "/accessibility-housing"}
	businessFundingKeywords   = []string{"/funding", "/grants", "/business-support"}
	jobsKeywords              = []string{"/jobs", "/employment", "/careers"}
	nonDiscriminationKeywords = []string{"/report", "/discrimination", "/advocacy"}
	accessibilityKeywords     = []string{"/accessibility", "/wcag", "/assistive"}
	aiAssistanceKeywords      = []string{"/ai", "/assistance", "/recommendations"}
)

// Classify evaluates every category rule against the given path and returns the
// classification set. Classification is total: a path matching no rule yields
// an all-false record, never an error. Matching is case-insensitive substring.
func Classify(path string) entity.EmpowermentClassification {
	path = strings.ToLower(path)
	return entity.EmpowermentClassification{
		SocialSecurity:    matchesAny(path, socialSecurityKeywords),
		Housing:           matchesAny(path, housingKeywords),
		BusinessFunding:   matchesAny(path, businessFundingKeywords),
		Jobs:              matchesAny(path, jobsKeywords),
		NonDiscrimination: matchesAny(path, nonDiscriminationKeywords),
		Accessibility:     matchesAny(path, accessibilityKeywords),
		AIAssistance:      matchesAny(path, aiAssistanceKeywords),
	}
}

func matchesAny(path string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(path, keyword) {
			return true
		}
	}
	return false
}
