package chathub_test

import "gomessenger/backend/internal/models"

// mockClient stands in for a live connection. Events the hub sends land on
// RecvChannel so tests can assert on deliveries.
type mockClient struct {
	id          string
	username    string
	closed      bool
	RecvChannel chan models.Event
}

func newMockClient(id string) *mockClient {
	return &mockClient{
		id:          id,
		RecvChannel: make(chan models.Event, 10),
	}
}

func (c *mockClient) GetID() string { return c.id }

func (c *mockClient) GetUsername() string { return c.username }

func (c *mockClient) SetUsername(name string) { c.username = name }

func (c *mockClient) GetSendChannel() chan<- models.Event { return c.RecvChannel }

func (c *mockClient) Run() {}

func (c *mockClient) Close() { c.closed = true }
