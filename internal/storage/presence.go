package storage

import (
	"encoding/json"

	"gomessenger/backend/internal/models"
)

const (
	// onlineUsersKey is the Redis set holding currently announced usernames.
	onlineUsersKey = "online_users"
	// eventsChannel is the Redis Pub/Sub channel where relayed events are
	// republished for external observers.
	eventsChannel = "chat:events"
)

// MarkOnline records the username in the Redis presence set.
func (s *Service) MarkOnline(username string) error {
	return s.Redis.SAdd(s.Ctx, onlineUsersKey, username).Err()
}

// MarkOffline removes the username from the Redis presence set.
func (s *Service) MarkOffline(username string) error {
	return s.Redis.SRem(s.Ctx, onlineUsersKey, username).Err()
}

// OnlineUsers returns every username currently in the presence set.
func (s *Service) OnlineUsers() ([]string, error) {
	return s.Redis.SMembers(s.Ctx, onlineUsersKey).Result()
}

// PublishEvent republishes a realtime event on the Redis Pub/Sub channel.
// Delivery to clients never depends on this; it is best-effort only.
func (s *Service) PublishEvent(evt models.Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, eventsChannel, payload).Err()
}
