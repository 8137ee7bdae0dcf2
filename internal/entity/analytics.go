// Structure of the Analytics-Event Model in Uplift.

package entity

import "time"

// RequestInfo holds the request-side facts of an analytics event.
type RequestInfo struct {
	Method        string    `json:"method"`
	Path          string    `json:"path"`
	Timestamp     time.Time `json:"timestamp"`
	ClientAddress string    `json:"clientAddress"`
	UserAgent     string    `json:"userAgent"`
}

// Outcome holds the response-side facts of an analytics event.
type Outcome struct {
	StatusCode           int   `json:"statusCode"`
	DurationMilliseconds int64 `json:"durationMilliseconds"`
	Success              bool  `json:"success"`
}

// ImpactIndicators are the derived boolean signals of a business-relevant outcome.
type ImpactIndicators struct {
	BarrierReduced      bool `json:"barrierReduced"`
	OpportunityAccessed bool `json:"opportunityAccessed"`
	SupportProvided     bool `json:"supportProvided"`
}

// AnalyticsEvent is the immutable record assembled once per completed request.
// It is handed to the sinks and the broadcast hub; delivery failures retry or
// drop the event, never edit it.
type AnalyticsEvent struct {
	ID               string                    `json:"id"`
	RequestInfo      RequestInfo               `json:"requestInfo"`
	Context          AccessibilityContext      `json:"accessibilityContext"`
	Classification   EmpowermentClassification `json:"classification"`
	Outcome          Outcome                   `json:"outcome"`
	ImpactIndicators ImpactIndicators          `json:"impactIndicators"`
}
