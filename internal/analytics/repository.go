// analytics repository encapsulates the data access logic (interactions with the DB) related to analytics events in Uplift.

package analytics

import (
	"Uplift/internal/entity"
	"Uplift/internal/errors"
	"Uplift/pkg/db"
	"Uplift/pkg/log"
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
)

// Redis stream holding the most recent analytics events.
var eventStreamKey string = "uplift:events"

// Bound on the stream length, older entries get trimmed away.
var eventStreamMaxLen int64 = 1024

type Repository interface {
	// AddEvent appends an assembled analytics event onto the event stream.
	AddEvent(ctx context.Context, logger log.Logger, event entity.AnalyticsEvent) error
	// RecentEvents fetches upto count most recent events from the event stream, newest first.
	RecentEvents(ctx context.Context, logger log.Logger, count int64) ([]entity.AnalyticsEvent, error)
}

// repository struct of analytics Repository.
// Object of this will be passed around from main to internal.
// Helps to access the repository layer interface and call methods.
type repository struct {
	db *db.RedisDB
}

// Returns a new instance of analytics repository for other packages to access its interface.
func NewRepository(dbwrp *db.RedisDB) Repository {
	return repository{db: dbwrp}
}

// Returns nil if the event got successfully appended onto the stream.
func (r repository) AddEvent(ctx context.Context, logger log.Logger, event entity.AnalyticsEvent) error {
	payload, jsonerr := json.Marshal(event)
	if jsonerr != nil {
		logger.WithCtx(ctx).Error().Err(jsonerr).Msg("Error occured during marshalling event in analytics.AddEvent")
		return errors.InternalServerError("")
	}
	dberr := r.db.Client().XAdd(ctx, &redis.XAddArgs{
		Stream: eventStreamKey,
		MaxLen: eventStreamMaxLen,
		Approx: true,
		Values: map[string]interface{}{"event": payload},
	}).Err()
	if dberr != nil {
		logger.WithCtx(ctx).Error().Err(dberr).Msg("Error occured during execution of XAdd in analytics.AddEvent")
		return errors.InternalServerError("")
	}
	return nil
}

// Returns the most recent events available on the stream, newest first.
func (r repository) RecentEvents(ctx context.Context, logger log.Logger, count int64) ([]entity.AnalyticsEvent, error) {
	entries, dberr := r.db.Client().XRevRangeN(ctx, eventStreamKey, "+", "-", count).Result()
	if dberr != nil {
		logger.WithCtx(ctx).Error().Err(dberr).Msg("Error occured during execution of XRevRangeN in analytics.RecentEvents")
		return nil, errors.InternalServerError("")
	}
	events := []entity.AnalyticsEvent{}
	for _, entry := range entries {
		payload, ok := entry.Values["event"].(string)
		if !ok {
			continue
		}
		var event entity.AnalyticsEvent
		if jsonerr := json.Unmarshal([]byte(payload), &event); jsonerr != nil {
			logger.WithCtx(ctx).Warn().Err(jsonerr).Msg("Skipping malformed event entry in analytics.RecentEvents")
			continue
		}
		events = append(events, event)
	}
	return events, nil
}
