// Event sinks receiving assembled analytics events in Uplift.

package analytics

import (
	"Uplift/internal/entity"
	"Uplift/pkg/log"
	"context"
)

// Sink is a forwarding destination for assembled analytics events.
// Delivery is best-effort, a failed delivery drops the event and never
// reaches back into the request pipeline.
type Sink interface {
	Deliver(ctx context.Context, event entity.AnalyticsEvent) error
}

// LogSink forwards every event onto the structured log stream.
type LogSink struct {
	logger log.Logger
}

// Returns a new LogSink writing on the given logger.
func NewLogSink(logger log.Logger) LogSink {
	return LogSink{logger: logger}
}

func (s LogSink) Deliver(ctx context.Context, event entity.AnalyticsEvent) error {
	s.logger.WithCtx(ctx).Info().
		Str("EventID", event.ID).
		Str("Method", event.RequestInfo.Method).
		Str("Path", event.RequestInfo.Path).
		Int("Status", event.Outcome.StatusCode).
		Int64("DurationMs", event.Outcome.DurationMilliseconds).
		Bool("BarrierReduced", event.ImpactIndicators.BarrierReduced).
		Bool("OpportunityAccessed", event.ImpactIndicators.OpportunityAccessed).
		Bool("SupportProvided", event.ImpactIndicators.SupportProvided).
		Msg("Analytics Event")
	return nil
}
