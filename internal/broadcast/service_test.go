// Live-connection protocol tests. A real websocket client dials an httptest
// server, everything past the upgrade runs the production path.

package broadcast

import (
	"Uplift/internal/entity"
	"Uplift/internal/test"
	"Uplift/pkg/validation"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	validation.RegisterCustomValidations()
	os.Exit(m.Run())
}

// setupLiveServer wires the live endpoint onto a test server and returns it
// together with the service's hub and metrics for assertions.
func setupLiveServer(t *testing.T) (*httptest.Server, *Hub, *Metrics) {
	metrics := NewMetrics(prometheus.NewRegistry())
	hub := NewHub(metrics, testLogger)
	svc := NewService(hub, nil, metrics, testLogger)
	router := test.MockRouter()
	APIHandlers(router, svc, testLogger)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, hub, metrics
}

func dialLive(t *testing.T, server *httptest.Server) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/live"
	conn, _, dialerr := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, dialerr)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readPush(t *testing.T, conn *websocket.Conn) entity.LivePush {
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var push entity.LivePush
	require.NoError(t, conn.ReadJSON(&push))
	return push
}

func TestJoinAccessibilityRoom(t *testing.T) {
	server, hub, _ := setupLiveServer(t)
	conn := dialLive(t, server)

	require.NoError(t, conn.WriteJSON(entity.LiveMessage{Type: "join_accessibility_room", SubjectID: "42"}))

	push := readPush(t, conn)
	assert.Equal(t, "joined", push.Kind)
	assert.Equal(t, "accessibility:42", push.Room)

	hub.Publish("accessibility:42", entity.AnalyticsEvent{ID: "e1"})
	push = readPush(t, conn)
	assert.Equal(t, "event", push.Kind)
	assert.Equal(t, "e1", push.Event.ID)
}

func TestSubscribeEmpowermentAnalytics(t *testing.T) {
	server, hub, _ := setupLiveServer(t)
	conn := dialLive(t, server)

	require.NoError(t, conn.WriteJSON(entity.LiveMessage{Type: "subscribe_empowerment_analytics", SubjectID: "42"}))

	push := readPush(t, conn)
	assert.Equal(t, "joined", push.Kind)
	assert.Equal(t, "empowerment:42", push.Room)

	hub.Publish("empowerment:42", entity.AnalyticsEvent{ID: "e2"})
	assert.Equal(t, "e2", readPush(t, conn).Event.ID)
}

func TestMalformedMessageKeepsConnectionAlive(t *testing.T) {
	server, _, _ := setupLiveServer(t)
	conn := dialLive(t, server)

	require.NoError(t, conn.WriteJSON(entity.LiveMessage{Type: "bogus", SubjectID: "42"}))
	push := readPush(t, conn)
	assert.Equal(t, "error", push.Kind)

	// Connection survives, a valid join still works
	require.NoError(t, conn.WriteJSON(entity.LiveMessage{Type: "join_accessibility_room", SubjectID: "42"}))
	assert.Equal(t, "joined", readPush(t, conn).Kind)
}

func TestSubjectIDRejectsSpaces(t *testing.T) {
	server, hub, _ := setupLiveServer(t)
	conn := dialLive(t, server)

	require.NoError(t, conn.WriteJSON(entity.LiveMessage{Type: "join_accessibility_room", SubjectID: "4 2"}))
	assert.Equal(t, "error", readPush(t, conn).Kind)
	assert.Empty(t, hub.snapshot("accessibility:4 2"))
}

func TestDisconnectClearsMembership(t *testing.T) {
	server, hub, metrics := setupLiveServer(t)
	conn := dialLive(t, server)

	require.NoError(t, conn.WriteJSON(entity.LiveMessage{Type: "join_accessibility_room", SubjectID: "42"}))
	assert.Equal(t, "joined", readPush(t, conn).Kind)
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.ConnectedClients) == 1
	}, 2*time.Second, 10*time.Millisecond)

	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()

	assert.Eventually(t, func() bool {
		return len(hub.snapshot("accessibility:42")) == 0 && testutil.ToFloat64(metrics.ConnectedClients) == 0
	}, 2*time.Second, 10*time.Millisecond)
}
