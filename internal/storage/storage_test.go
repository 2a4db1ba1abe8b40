package storage_test

import (
	"fmt"
	"testing"
	"time"

	"gomessenger/backend/internal/models"
	"gomessenger/backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestService runs the storage layer against an in-memory SQLite database
// so the GORM queries are exercised for real without a PostgreSQL instance.
func newTestService(t *testing.T) *storage.Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Message{}))
	return storage.NewStorageService(db, nil)
}

func TestSaveMessage_AssignsIDAndTimestamps(t *testing.T) {
	s := newTestService(t)

	msg := &models.Message{SenderID: "u1", ReceiverID: "u2", Text: "hi"}
	require.NoError(t, s.SaveMessage(msg))

	assert.NotZero(t, msg.ID)
	assert.False(t, msg.CreatedAt.IsZero())
	assert.False(t, msg.UpdatedAt.IsZero())
}

func TestSaveMessage_Validation(t *testing.T) {
	s := newTestService(t)

	tests := []struct {
		name string
		msg  models.Message
	}{
		{"missing sender", models.Message{ReceiverID: "u2", Text: "hi"}},
		{"missing receiver", models.Message{SenderID: "u1", Text: "hi"}},
		{"empty text", models.Message{SenderID: "u1", ReceiverID: "u2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.SaveMessage(&tt.msg)
			assert.ErrorIs(t, err, storage.ErrValidation)
		})
	}

	// Nothing may have reached the log.
	messages, err := s.MessagesBetween("u1", "u2")
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestMessagesBetween_MergesBothDirectionsInOrder(t *testing.T) {
	s := newTestService(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	seed := []models.Message{
		{SenderID: "u1", ReceiverID: "u2", Text: "first"},
		{SenderID: "u2", ReceiverID: "u1", Text: "second"},
		{SenderID: "u1", ReceiverID: "u2", Text: "third"},
		{SenderID: "u1", ReceiverID: "u3", Text: "other pair"},
	}
	for i := range seed {
		seed[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, s.SaveMessage(&seed[i]))
	}

	messages, err := s.MessagesBetween("u1", "u2")
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Text)
	assert.Equal(t, "second", messages[1].Text)
	assert.Equal(t, "third", messages[2].Text)

	// The participant pair is symmetric.
	reversed, err := s.MessagesBetween("u2", "u1")
	require.NoError(t, err)
	require.Len(t, reversed, 3)
	assert.Equal(t, messages[0].ID, reversed[0].ID)
}

func TestMessagesBetween_EqualTimestampsTieBreakByID(t *testing.T) {
	s := newTestService(t)

	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	first := models.Message{SenderID: "u1", ReceiverID: "u2", Text: "a"}
	second := models.Message{SenderID: "u2", ReceiverID: "u1", Text: "b"}
	first.CreatedAt = at
	second.CreatedAt = at
	require.NoError(t, s.SaveMessage(&first))
	require.NoError(t, s.SaveMessage(&second))

	messages, err := s.MessagesBetween("u1", "u2")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "a", messages[0].Text)
	assert.Equal(t, "b", messages[1].Text)
}

func TestCreateUser_HashesPasswordAndRejectsDuplicatePhone(t *testing.T) {
	s := newTestService(t)

	user := &models.User{Username: "alice", Phone: "555-0100", Password: "secret"}
	require.NoError(t, s.CreateUser(user))

	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "secret", user.Password, "plaintext must not be stored")

	dup := &models.User{Username: "impostor", Phone: "555-0100", Password: "other"}
	assert.ErrorIs(t, s.CreateUser(dup), storage.ErrPhoneTaken)
}

func TestAuthenticate(t *testing.T) {
	s := newTestService(t)

	user := &models.User{Username: "alice", Phone: "555-0100", Password: "secret"}
	require.NoError(t, s.CreateUser(user))

	got, err := s.Authenticate("555-0100", "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = s.Authenticate("555-0100", "wrong")
	assert.ErrorIs(t, err, storage.ErrBadCredentials)

	_, err = s.Authenticate("555-0199", "secret")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestListUsers(t *testing.T) {
	s := newTestService(t)

	require.NoError(t, s.CreateUser(&models.User{Username: "alice", Phone: "555-0100", Password: "a"}))
	require.NoError(t, s.CreateUser(&models.User{Username: "bob", Phone: "555-0101", Password: "b"}))

	users, err := s.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
