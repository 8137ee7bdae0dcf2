// Structure of the Live-Connection protocol Models in Uplift.

package entity

// LiveMessage is a client-to-server message on a live connection.
// Type picks the room topic, SubjectID the identity the room is scoped to.
type LiveMessage struct {
	Type      string `json:"type" valid:"required,livemsgtype"`
	SubjectID string `json:"subjectId" valid:"required,alphanum,nospace"`
}

// LivePush is a server-to-client message on a live connection.
// Kind is either "event" (room-scoped analytics push) or "announcement"
// (live-region text push).
type LivePush struct {
	Kind    string          `json:"kind"`
	Room    string          `json:"room,omitempty"`
	Event   *AnalyticsEvent `json:"event,omitempty"`
	Message string          `json:"message,omitempty"`
}
