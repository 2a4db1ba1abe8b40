package chathub

import "gomessenger/backend/internal/models"

// Client is the interface for one live realtime connection. It abstracts the
// underlying transport so the hub can manage connections uniformly.
type Client interface {
	// GetID returns the opaque connection identifier.
	GetID() string

	// GetUsername returns the presence username announced via the "online"
	// event, or "" if the connection never announced one.
	GetUsername() string
	// SetUsername records the announced presence username. Called by the hub
	// dispatcher only.
	SetUsername(string)

	// GetSendChannel returns the channel the hub writes outbound events to.
	GetSendChannel() chan<- models.Event

	// Run starts the connection's read and write loops.
	Run()
	// Close shuts down the outbound side of the connection.
	Close()
}
