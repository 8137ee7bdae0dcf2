// Service layer of the internal package analytics.
// Assembles one immutable AnalyticsEvent per completed request and fans it out
// to the sinks and the broadcast hub without delaying the client response.

package analytics

import (
	"Uplift/internal/accessibility"
	"Uplift/internal/classifier"
	"Uplift/internal/entity"
	"Uplift/pkg/log"
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Publisher is the live fan-out collaborator of the analytics pipeline.
// Satisfied by the broadcast hub.
type Publisher interface {
	// Publish delivers the event to every client joined to the room.
	Publish(room string, event entity.AnalyticsEvent)
	// Announce pushes a live-region announcement to every client joined to the room.
	Announce(room string, message string)
}

// Housekeeping paths which never produce analytics events, so probes and
// scrapes don't pollute the impact metrics.
var excludedPaths = map[string]struct{}{
	"/health":      {},
	"/metrics":     {},
	"/favicon.ico": {},
	"/api/live":    {},
}

// Service layer of internal package analytics which encapsulates the event
// assembly and fan-out logic of Uplift.
type Service interface {
	// CollectorMiddleware measures every request and assembles its event at completion.
	CollectorMiddleware() gin.HandlerFunc
	// RecentEvents fetches the most recent assembled events, newest first.
	RecentEvents(ctx context.Context, count int64) ([]entity.AnalyticsEvent, error)
}

// Object of this will be passed around from main to routers to API.
// Helps to access the service layer interface and call methods.
// Also helps to pass objects to be used from outer layer.
type service struct {
	repo      Repository
	sinks     []Sink
	publisher Publisher
	metrics   *Metrics
	logger    log.Logger
}

// Helps to access the service layer interface and call methods. Service object is passed from main.
func NewService(repo Repository, sinks []Sink, publisher Publisher, metrics *Metrics, logger log.Logger) Service {
	return service{repo: repo, sinks: sinks, publisher: publisher, metrics: metrics, logger: logger}
}

func (s service) CollectorMiddleware() gin.HandlerFunc {
	return func(gctx *gin.Context) {
		start := time.Now()

		// Process request
		gctx.Next()

		duration := time.Since(start)
		gctx.Writer.Header().Set("X-Process-Time", strconv.FormatFloat(duration.Seconds(), 'f', -1, 64))

		if gctx.IsWebsocket() {
			return
		}
		if _, excluded := excludedPaths[gctx.Request.URL.Path]; excluded {
			return
		}

		event := s.assemble(gctx, start, duration)
		// Subject identity arrives on the inbound header, set by the auth
		// layer in front of Uplift.
		subjectID := gctx.Request.Header.Get("X-Subject-ID")
		reqID, _ := gctx.Value("ReqID").(string)

		// The response is already on its way out, delivery happens off the
		// request goroutine on a best-effort basis.
		go s.dispatch(reqID, event, subjectID)
	}
}

// assemble combines request info, accessibility context, classification and
// outcome into one immutable event. Context or classification unexpectedly
// absent fall back to safe defaults, assembly never fails the request.
func (s service) assemble(gctx *gin.Context, start time.Time, duration time.Duration) entity.AnalyticsEvent {
	actx := accessibility.ContextFrom(gctx)
	classification := classifier.From(gctx)
	statusCode := gctx.Writer.Status()
	outcome := entity.Outcome{
		StatusCode:           statusCode,
		DurationMilliseconds: duration.Milliseconds(),
		Success:              statusCode >= 200 && statusCode < 400,
	}
	return entity.AnalyticsEvent{
		ID: uuid.NewString(),
		RequestInfo: entity.RequestInfo{
			Method:        gctx.Request.Method,
			Path:          gctx.Request.URL.Path,
			Timestamp:     start.UTC(),
			ClientAddress: gctx.ClientIP(),
			UserAgent:     gctx.Request.UserAgent(),
		},
		Context:          actx,
		Classification:   classification,
		Outcome:          outcome,
		ImpactIndicators: DeriveImpact(classification, outcome),
	}
}

// dispatch hands the event over to the sinks and, if a subject is known, the
// broadcast rooms. Every failure here is logged and swallowed, the client
// response is long gone.
func (s service) dispatch(reqID string, event entity.AnalyticsEvent, subjectID string) {
	// Request context is cancelled once the response flushes, so delivery runs
	// on a fresh context carrying only the correlation ID.
	ctx := context.WithValue(context.Background(), "ReqID", reqID) //nolint:staticcheck

	s.metrics.EventsAssembled.Inc()

	for _, sink := range s.sinks {
		if err := sink.Deliver(ctx, event); err != nil {
			s.metrics.EventsDropped.Inc()
			s.logger.WithCtx(ctx).Warn().Err(err).Str("EventID", event.ID).Msg("Dropped analytics event during sink delivery")
		}
	}
	if s.repo != nil {
		if dberr := s.repo.AddEvent(ctx, s.logger, event); dberr != nil {
			s.metrics.EventsDropped.Inc()
			s.logger.WithCtx(ctx).Warn().Err(dberr).Str("EventID", event.ID).Msg("Dropped analytics event during stream delivery")
		}
	}

	if s.publisher == nil || subjectID == "" {
		return
	}
	s.publisher.Publish("empowerment:"+subjectID, event)
	if event.Classification.Accessibility {
		s.publisher.Publish("accessibility:"+subjectID, event)
	}
	if event.ImpactIndicators.OpportunityAccessed {
		s.publisher.Announce("accessibility:"+subjectID, "New opportunity accessed successfully")
	}
}

func (s service) RecentEvents(ctx context.Context, count int64) ([]entity.AnalyticsEvent, error) {
	return s.repo.RecentEvents(ctx, s.logger, count)
}
