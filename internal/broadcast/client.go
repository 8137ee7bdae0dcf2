// Per-connection client handle of the broadcast hub in Uplift.
// Wraps one live websocket connection with a bounded send buffer and the
// live-region announcer driving announcement pushes.

package broadcast

import (
	"Uplift/internal/entity"
	"Uplift/internal/liveregion"
	"Uplift/pkg/log"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/xid"
)

const (
	// Allowed duration of a single write to the peer.
	writeWait = 10 * time.Second
	// Read deadline refreshed on every pong from the peer.
	pongWait = 60 * time.Second
	// Ping cadence, must be shorter than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Upper bound on inbound message size, the join protocol is tiny.
	maxMessageSize = 512
	// Pushes queued per client before deliveries start failing.
	sendBufferSize = 16
)

// ErrSendBufferFull is returned when a push finds the client's buffer full.
// The delivery is dropped for that client only.
var ErrSendBufferFull = errors.New("client send buffer is full")

var errClientGone = errors.New("client connection is closed")

// Client is the handle the hub holds for one live connection.
type Client struct {
	id        string
	conn      *websocket.Conn
	send      chan entity.LivePush
	announcer *liveregion.Announcer
	logger    log.Logger

	mu       sync.Mutex
	rooms    map[string]struct{}
	subjects map[string]struct{}
	closed   bool
}

func newClient(conn *websocket.Conn, logger log.Logger) *Client {
	client := &Client{
		id:       xid.New().String(),
		conn:     conn,
		send:     make(chan entity.LivePush, sendBufferSize),
		logger:   logger,
		rooms:    make(map[string]struct{}),
		subjects: make(map[string]struct{}),
	}
	// Announcement state changes go out as pushes, the client side renders
	// them into its live region verbatim.
	client.announcer = liveregion.NewAnnouncer(liveregion.DefaultClearDelay, func(message string) {
		if err := client.push(entity.LivePush{Kind: "announcement", Message: message}); err != nil {
			logger.Warn().Err(err).Str("Client", client.id).Msg("Couldn't deliver announcement to live client")
		}
	})
	return client
}

// ID returns the connection-scoped client identifier.
func (c *Client) ID() string {
	return c.id
}

// Announce runs one live-region announcement cycle on this client.
func (c *Client) Announce(message string) {
	c.announcer.Announce(message)
}

// push queues an outbound message without ever blocking the caller.
// The send stays under the lock so a concurrent shutdown can't close the
// channel between the closed check and the send. The select never blocks,
// holding the lock across it is safe.
func (c *Client) push(p entity.LivePush) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errClientGone
	}
	select {
	case c.send <- p:
		return nil
	default:
		return ErrSendBufferFull
	}
}

// trackRoom remembers a joined room key for the eventual LeaveAll.
func (c *Client) trackRoom(key string) {
	c.mu.Lock()
	c.rooms[key] = struct{}{}
	c.mu.Unlock()
}

// trackSubject remembers a subject identity this connection subscribed for.
func (c *Client) trackSubject(subjectID string) {
	c.mu.Lock()
	c.subjects[subjectID] = struct{}{}
	c.mu.Unlock()
}

// clearRooms empties and returns the joined room keys.
func (c *Client) clearRooms() []string {
	c.mu.Lock()
	keys := make([]string, 0, len(c.rooms))
	for key := range c.rooms {
		keys = append(keys, key)
	}
	c.rooms = make(map[string]struct{})
	c.mu.Unlock()
	return keys
}

// subjectList returns the subject identities this connection subscribed for.
func (c *Client) subjectList() []string {
	c.mu.Lock()
	subjects := make([]string, 0, len(c.subjects))
	for subjectID := range c.subjects {
		subjects = append(subjects, subjectID)
	}
	c.mu.Unlock()
	return subjects
}

// shutdown marks the client closed and stops the pending announcement clear.
// Idempotent, the send channel closes exactly once.
func (c *Client) shutdown() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()
	c.announcer.Stop()
	close(c.send)
}

// writePump serializes all writes to the websocket connection.
// Runs as a single goroutine per connection until the send channel closes.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case push, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if werr := c.conn.WriteJSON(push); werr != nil {
				c.logger.Warn().Err(werr).Str("Client", c.id).Msg("Error occured during writing to live client")
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if werr := c.conn.WriteMessage(websocket.PingMessage, nil); werr != nil {
				return
			}
		}
	}
}
