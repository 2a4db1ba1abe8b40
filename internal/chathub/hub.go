package chathub

import (
	"encoding/json"
	"fmt"
	"log"

	"gomessenger/backend/internal/models"
	"gomessenger/backend/internal/storage"
)

// InboundEvent pairs a decoded client event with the connection it arrived on.
type InboundEvent struct {
	ConnID string
	Event  models.Event
}

// Hub owns every live connection and the room membership map. All mutation
// happens on the single goroutine running Run, so no locking is needed:
// events from one connection are handled to completion in arrival order,
// while different connections' events interleave at event granularity.
type Hub struct {
	// Clients maps connection ID to the live client.
	Clients map[string]Client

	// rooms maps room key to the set of member connection IDs.
	rooms map[string]map[string]struct{}

	RegisterCh   chan Client
	UnregisterCh chan Client
	EventCh      chan InboundEvent

	Storage storage.Storage

	// SyncPersistence makes the relay wait for the message store before
	// broadcasting. Off by default: persistence and broadcast race, and a
	// store failure never blocks delivery.
	SyncPersistence bool
}

func NewHub(s storage.Storage) *Hub {
	return &Hub{
		Clients:      make(map[string]Client),
		rooms:        make(map[string]map[string]struct{}),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		EventCh:      make(chan InboundEvent),
		Storage:      s,
	}
}

// Run is the hub dispatcher loop. It must run on exactly one goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.RegisterCh:
			h.Clients[client.GetID()] = client
			log.Printf("connection %s joined", client.GetID())

		case client := <-h.UnregisterCh:
			h.removeClient(client)

		case ev := <-h.EventCh:
			h.dispatch(ev)
		}
	}
}

func (h *Hub) dispatch(ev InboundEvent) {
	switch ev.Event.Name {
	case models.EventOnline:
		var payload models.OnlinePayload
		if err := json.Unmarshal(ev.Event.Data, &payload); err != nil {
			log.Printf("connection %s: bad online payload: %v", ev.ConnID, err)
			return
		}
		h.announce(ev.ConnID, payload.Username)

	case models.EventNewMessage:
		var payload models.NewMessagePayload
		if err := json.Unmarshal(ev.Event.Data, &payload); err != nil {
			log.Printf("connection %s: bad newMessage payload: %v", ev.ConnID, err)
			return
		}
		h.relay(payload)

	case models.EventCreateChat:
		var payload models.CreateChatPayload
		if err := json.Unmarshal(ev.Event.Data, &payload); err != nil {
			log.Printf("connection %s: bad createChat payload: %v", ev.ConnID, err)
			return
		}
		h.joinPair(ev.ConnID, payload.HostUsername, payload.GuestUsername)
		log.Printf("%s:%s / %s:%s", payload.HostUsername, payload.GuestUsername,
			payload.GuestUsername, payload.HostUsername)

	default:
		log.Printf("connection %s: unknown event %q", ev.ConnID, ev.Event.Name)
	}
}

// announce broadcasts an online notice to every connection except the origin.
// There is no room filtering and no dedupe of repeated announces. Presence
// bookkeeping in Redis is best-effort and never gates the broadcast.
func (h *Hub) announce(connID, username string) {
	if client, ok := h.Clients[connID]; ok {
		client.SetUsername(username)
	}

	go func() {
		if err := h.Storage.MarkOnline(username); err != nil {
			log.Printf("presence: failed to mark %s online: %v", username, err)
		}
	}()

	evt, err := models.NewEvent(models.EventOnline, models.OnlineNotice{
		Message:  fmt.Sprintf("%q", username+" join the chat"),
		Username: username,
		Online:   true,
	})
	if err != nil {
		log.Printf("presence: failed to encode notice for %s: %v", username, err)
		return
	}

	for id, client := range h.Clients {
		if id == connID {
			continue
		}
		h.send(client, evt)
	}
}

// relay persists the message and fans the original payload out to both rooms
// of the sender/receiver pair. Persistence is fire-and-forget unless
// SyncPersistence is set; the broadcast proceeds even when the store fails.
func (h *Hub) relay(payload models.NewMessagePayload) {
	persist := func() {
		msg := &models.Message{
			SenderID:   payload.HostUserID,
			ReceiverID: payload.GuestUserID,
			Text:       payload.Text,
		}
		if err := h.Storage.SaveMessage(msg); err != nil {
			log.Printf("relay: dropping message %s -> %s from durable log: %v",
				payload.HostUserID, payload.GuestUserID, err)
		}
	}
	if h.SyncPersistence {
		persist()
	} else {
		go persist()
	}

	evt, err := models.NewEvent(models.EventNewMessage, payload)
	if err != nil {
		log.Printf("relay: failed to encode message %s -> %s: %v",
			payload.HostUserID, payload.GuestUserID, err)
		return
	}

	roomA, roomB := RoomKeys(payload.HostUsername, payload.GuestUsername)
	h.broadcastRooms(evt, roomA, roomB)

	go func() {
		if err := h.Storage.PublishEvent(evt); err != nil {
			log.Printf("relay: failed to republish event: %v", err)
		}
	}()
}

// broadcastRooms delivers the event to the union of the rooms' members,
// at most once per connection even when it sits in both rooms.
func (h *Hub) broadcastRooms(evt models.Event, roomKeys ...string) {
	delivered := make(map[string]struct{})
	for _, roomKey := range roomKeys {
		for connID := range h.rooms[roomKey] {
			if _, dup := delivered[connID]; dup {
				continue
			}
			delivered[connID] = struct{}{}
			if client, ok := h.Clients[connID]; ok {
				h.send(client, evt)
			}
		}
	}
}

// send hands the event to the client's write loop without blocking the
// dispatcher. A client whose send buffer is full is dropped.
func (h *Hub) send(client Client, evt models.Event) {
	select {
	case client.GetSendChannel() <- evt:
	default:
		log.Printf("connection %s: send buffer full, dropping client", client.GetID())
		h.removeClient(client)
	}
}

// removeClient releases the connection: its entry in Clients, every room
// membership, its presence record, and its send channel. Idempotent, since
// both the read loop and a full send buffer can trigger it.
func (h *Hub) removeClient(client Client) {
	connID := client.GetID()
	if _, ok := h.Clients[connID]; !ok {
		return
	}
	delete(h.Clients, connID)
	h.leaveAll(connID)

	if username := client.GetUsername(); username != "" {
		go func() {
			if err := h.Storage.MarkOffline(username); err != nil {
				log.Printf("presence: failed to mark %s offline: %v", username, err)
			}
		}()
	}

	client.Close()
	log.Printf("connection %s left", connID)
}
