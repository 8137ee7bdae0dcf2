// Service layer of the internal package broadcast.
// Drives the per-connection state machine {connected, subscribed, disconnected}
// over the live-connection protocol and keeps the hub membership consistent
// with what each connection asked for.

package broadcast

import (
	"Uplift/internal/entity"
	"Uplift/pkg/log"
	"context"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/gorilla/websocket"
)

// Service layer of internal package broadcast which encapsulates the live
// connection handling logic of Uplift.
type Service interface {
	// HandleConnection drives one upgraded live connection until disconnect.
	// Disconnect deterministically clears all room memberships of the connection.
	HandleConnection(ctx context.Context, conn *websocket.Conn)
	// Hub exposes the hub so the analytics pipeline can publish into rooms.
	Hub() *Hub
}

// Object of this will be passed around from main to routers to API.
// Helps to access the service layer interface and call methods.
// Also helps to pass objects to be used from outer layer.
type service struct {
	hub     *Hub
	repo    Repository
	metrics *Metrics
	logger  log.Logger
}

// Helps to access the service layer interface and call methods. Service object is passed from main.
func NewService(hub *Hub, repo Repository, metrics *Metrics, logger log.Logger) Service {
	return service{hub: hub, repo: repo, metrics: metrics, logger: logger}
}

func (s service) Hub() *Hub {
	return s.hub
}

func (s service) HandleConnection(ctx context.Context, conn *websocket.Conn) {
	client := newClient(conn, s.logger)
	s.metrics.ConnectedClients.Inc()
	s.logger.WithCtx(ctx).Info().Str("Client", client.ID()).Msg("Live client connected")

	go client.writePump()
	s.readLoop(ctx, client)

	// Disconnected, remove the connection from every joined room before
	// anything else so no further publish can pick it up.
	s.hub.LeaveAll(client)
	client.shutdown()
	if s.repo != nil {
		for _, subjectID := range client.subjectList() {
			s.repo.RemoveSubject(ctx, s.logger, subjectID)
		}
	}
	s.metrics.ConnectedClients.Dec()
	s.logger.WithCtx(ctx).Info().Str("Client", client.ID()).Msg("Live client disconnected")
}

// readLoop consumes client-to-server messages until the connection drops.
func (s service) readLoop(ctx context.Context, client *Client) {
	conn := client.conn
	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		var msg entity.LiveMessage
		if rerr := conn.ReadJSON(&msg); rerr != nil {
			if websocket.IsUnexpectedCloseError(rerr, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				s.logger.WithCtx(ctx).Warn().Err(rerr).Str("Client", client.ID()).Msg("Live connection closed unexpectedly")
			}
			return
		}
		s.handleMessage(ctx, client, msg)
	}
}

// handleMessage applies one protocol message. Malformed messages are answered
// with an error push and otherwise ignored, they never tear the connection down.
func (s service) handleMessage(ctx context.Context, client *Client, msg entity.LiveMessage) {
	if _, valerr := govalidator.ValidateStruct(msg); valerr != nil {
		s.logger.WithCtx(ctx).Warn().Err(valerr).Str("Client", client.ID()).Msg("Invalid live message received")
		client.push(entity.LivePush{Kind: "error", Message: "Unsupported or malformed live message"})
		return
	}
	switch msg.Type {
	case "join_accessibility_room":
		s.join(ctx, client, "accessibility:"+msg.SubjectID, msg.SubjectID)
	case "subscribe_empowerment_analytics":
		s.join(ctx, client, "empowerment:"+msg.SubjectID, msg.SubjectID)
	}
}

func (s service) join(ctx context.Context, client *Client, roomKey, subjectID string) {
	s.hub.Join(roomKey, client)
	client.trackSubject(subjectID)
	if s.repo != nil {
		// Presence is advisory, a DB failure doesn't undo the join
		s.repo.AddSubject(ctx, s.logger, subjectID)
	}
	client.push(entity.LivePush{Kind: "joined", Room: roomKey})
}
