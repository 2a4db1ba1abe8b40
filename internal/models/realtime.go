package models

import "encoding/json"

// Realtime event names. These match the wire protocol spoken by clients
// over the WebSocket connection.
const (
	EventOnline     = "online"
	EventNewMessage = "newMessage"
	EventCreateChat = "createChat"
)

// Event is the envelope for every realtime frame, in both directions:
// {"event": "newMessage", "data": {...}}.
type Event struct {
	Name string          `json:"event"`
	Data json.RawMessage `json:"data"`
}

// NewEvent builds an outbound envelope with the payload already encoded.
func NewEvent(name string, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{Name: name, Data: data}, nil
}

// OnlinePayload is the client's presence announcement.
type OnlinePayload struct {
	Username string `json:"username"`
}

// OnlineNotice is the presence notification broadcast to all other peers.
type OnlineNotice struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	Online   bool   `json:"online"`
}

// NewMessagePayload carries a chat message from the sending client. The same
// payload is echoed verbatim to both chat rooms: no server-assigned ID or
// timestamp is attached to the broadcast copy.
type NewMessagePayload struct {
	HostUserID    string `json:"hostUserId"`
	GuestUserID   string `json:"guestUserId"`
	HostUsername  string `json:"hostUsername"`
	GuestUsername string `json:"guestUsername"`
	Text          string `json:"text"`
}

// CreateChatPayload asks to join the connection to both rooms derived from
// the host/guest username pair.
type CreateChatPayload struct {
	HostUsername  string `json:"hostUsername"`
	GuestUsername string `json:"guestUsername"`
}
