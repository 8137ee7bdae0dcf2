// Structure of the Accessibility-Context Model in Uplift.

package entity

// AccessibilityContext carries a requester's declared assistive-technology preferences.
// Built once per request from signal headers, immutable afterwards and never persisted.
type AccessibilityContext struct {
	ScreenReaderActive bool   `json:"screenReaderActive"`
	HighContrast       bool   `json:"highContrast"`
	ReducedMotion      bool   `json:"reducedMotion"`
	KeyboardNavigation bool   `json:"keyboardNavigation"`
	FontSize           int    `json:"fontSize"`
	Language           string `json:"language"`
}

// DefaultAccessibilityContext returns the context used when no signal headers are present.
func DefaultAccessibilityContext() AccessibilityContext {
	return AccessibilityContext{
		FontSize: 16,
		Language: "en",
	}
}
