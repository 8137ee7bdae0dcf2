// REST API tests for the recent-events endpoint backed by a fake repository.

package analytics_test

import (
	"Uplift/internal/analytics"
	"Uplift/internal/entity"
	"Uplift/internal/errors"
	"Uplift/internal/test"
	"Uplift/pkg/log"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

// fakeRepository serves canned events, newest first, and can be told to fail.
type fakeRepository struct {
	events []entity.AnalyticsEvent
	fail   bool
}

func (r fakeRepository) AddEvent(ctx context.Context, logger log.Logger, event entity.AnalyticsEvent) error {
	return nil
}

func (r fakeRepository) RecentEvents(ctx context.Context, logger log.Logger, count int64) ([]entity.AnalyticsEvent, error) {
	if r.fail {
		return nil, errors.InternalServerError("")
	}
	if count < int64(len(r.events)) {
		return r.events[:count], nil
	}
	return r.events, nil
}

func setupRecentEventsAPI(repo analytics.Repository) *gin.Engine {
	router := test.MockRouter()
	svc := analytics.NewService(repo, nil, nil, analytics.NewMetrics(prometheus.NewRegistry()), logger)
	analytics.APIHandlers(router, svc, logger)
	return router
}

func TestRecentEventsAPI(t *testing.T) {
	repo := fakeRepository{events: []entity.AnalyticsEvent{{ID: "e2"}, {ID: "e1"}}}
	router := setupRecentEventsAPI(repo)

	w := test.ExecuteAPITest(logger, t, router, test.RequestAPITest{
		Method:       "GET",
		Path:         "/api/analytics/recent",
		WantResponse: []int{http.StatusOK},
	})

	var resp struct {
		Events []entity.AnalyticsEvent `json:"events"`
		Count  int                     `json:"count"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "e2", resp.Events[0].ID)
}

func TestRecentEventsAPICountParam(t *testing.T) {
	repo := fakeRepository{events: []entity.AnalyticsEvent{{ID: "e3"}, {ID: "e2"}, {ID: "e1"}}}
	router := setupRecentEventsAPI(repo)

	w := test.ExecuteAPITest(logger, t, router, test.RequestAPITest{
		Method:       "GET",
		Path:         "/api/analytics/recent?count=1",
		WantResponse: []int{http.StatusOK},
	})
	var resp struct {
		Count int `json:"count"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
}

func TestRecentEventsAPIRejectsBadCount(t *testing.T) {
	router := setupRecentEventsAPI(fakeRepository{})

	for _, raw := range []string{"0", "-5", "101", "many"} {
		test.ExecuteAPITest(logger, t, router, test.RequestAPITest{
			Method:       "GET",
			Path:         "/api/analytics/recent?count=" + raw,
			WantResponse: []int{http.StatusBadRequest},
		})
	}
}

func TestRecentEventsAPIRepositoryFailure(t *testing.T) {
	router := setupRecentEventsAPI(fakeRepository{fail: true})

	w := test.ExecuteAPITest(logger, t, router, test.RequestAPITest{
		Method:       "GET",
		Path:         "/api/analytics/recent",
		WantResponse: []int{http.StatusInternalServerError},
	})
	var resp errors.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "server_error", resp.Err.Type)
}
