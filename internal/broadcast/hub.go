// Broadcast hub of Uplift.
// Owns the subscription rooms and gates delivery of analytics events and
// live-region announcements to connected clients. Rooms only gate delivery,
// no event payload is ever stored in a room.

package broadcast

import (
	"Uplift/internal/entity"
	"Uplift/pkg/log"
	"sync"
)

// room holds the membership of one room key. Join, leave and publish on the
// same room serialize on its mutex, operations on different rooms never
// contend. evicted marks a room removed from the index so a racing join can
// re-fetch instead of landing in an orphan.
type room struct {
	mu      sync.Mutex
	members map[*Client]struct{}
	evicted bool
}

// Hub maintains the room index. Membership is the only mutable state here,
// room existence is implicit: publishing to a room with no members is a no-op.
type Hub struct {
	rooms   sync.Map // room key -> *room
	metrics *Metrics
	logger  log.Logger
}

// NewHub returns an empty hub.
func NewHub(metrics *Metrics, logger log.Logger) *Hub {
	return &Hub{metrics: metrics, logger: logger}
}

func (h *Hub) room(key string) *room {
	v, _ := h.rooms.LoadOrStore(key, &room{members: make(map[*Client]struct{})})
	return v.(*room)
}

// Join adds the client to the room with the given key.
func (h *Hub) Join(key string, client *Client) {
	for {
		r := h.room(key)
		r.mu.Lock()
		if r.evicted {
			r.mu.Unlock()
			continue
		}
		r.members[client] = struct{}{}
		r.mu.Unlock()
		client.trackRoom(key)
		h.logger.Info().Str("Room", key).Str("Client", client.ID()).Msg("Client joined room")
		return
	}
}

// LeaveAll removes the client from every room it joined.
// Invoked on disconnect, afterwards the client receives nothing until it rejoins.
func (h *Hub) LeaveAll(client *Client) {
	for _, key := range client.clearRooms() {
		h.leave(key, client)
		h.logger.Info().Str("Room", key).Str("Client", client.ID()).Msg("Client left room")
	}
}

func (h *Hub) leave(key string, client *Client) {
	v, ok := h.rooms.Load(key)
	if !ok {
		return
	}
	r := v.(*room)
	r.mu.Lock()
	delete(r.members, client)
	if len(r.members) == 0 {
		r.evicted = true
		h.rooms.Delete(key)
	}
	r.mu.Unlock()
}

// snapshot returns the membership of the room at one serialized point in time.
func (h *Hub) snapshot(key string) []*Client {
	v, ok := h.rooms.Load(key)
	if !ok {
		return nil
	}
	r := v.(*room)
	r.mu.Lock()
	members := make([]*Client, 0, len(r.members))
	for client := range r.members {
		members = append(members, client)
	}
	r.mu.Unlock()
	return members
}

// Publish delivers the event to every client currently joined to the room.
// Delivery to one client never blocks and never aborts delivery to siblings,
// a slow or gone client just misses the event.
func (h *Hub) Publish(key string, event entity.AnalyticsEvent) {
	members := h.snapshot(key)
	if len(members) == 0 {
		return
	}
	h.metrics.RoomPublishes.Inc()
	push := entity.LivePush{Kind: "event", Room: key, Event: &event}
	for _, client := range members {
		if err := client.push(push); err != nil {
			h.metrics.DeliveriesFailed.Inc()
			h.logger.Warn().Err(err).Str("Room", key).Str("Client", client.ID()).Msg("Couldn't deliver event to live client")
		}
	}
}

// Announce runs a live-region announcement cycle on every client currently
// joined to the room. Same isolation rules as Publish.
func (h *Hub) Announce(key string, message string) {
	for _, client := range h.snapshot(key) {
		client.Announce(message)
	}
}
