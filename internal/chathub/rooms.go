package chathub

// RoomKeys derives the two deterministic room identifiers for a chat pair.
// Both participants join both rooms, so a broadcast to the pair of keys
// reaches exactly the two of them. No validation is performed: malformed
// usernames simply produce keys nothing ever broadcasts to.
func RoomKeys(hostUsername, guestUsername string) (string, string) {
	return hostUsername + ":" + guestUsername, guestUsername + ":" + hostUsername
}

// joinPair adds the connection to both rooms of the pair. Membership is a
// set, so repeated createChat events are idempotent.
// Called from the hub dispatcher goroutine only.
func (h *Hub) joinPair(connID, hostUsername, guestUsername string) {
	roomA, roomB := RoomKeys(hostUsername, guestUsername)
	h.join(roomA, connID)
	h.join(roomB, connID)
}

func (h *Hub) join(roomKey, connID string) {
	if h.rooms[roomKey] == nil {
		h.rooms[roomKey] = make(map[string]struct{})
	}
	h.rooms[roomKey][connID] = struct{}{}
}

// leaveAll releases every room membership held by the connection.
func (h *Hub) leaveAll(connID string) {
	for roomKey, members := range h.rooms {
		delete(members, connID)
		if len(members) == 0 {
			delete(h.rooms, roomKey)
		}
	}
}

// InRoom reports whether the connection is currently a member of the room.
func (h *Hub) InRoom(roomKey, connID string) bool {
	_, ok := h.rooms[roomKey][connID]
	return ok
}

// RoomSize returns the number of connections joined to the room.
func (h *Hub) RoomSize(roomKey string) int {
	return len(h.rooms[roomKey])
}
