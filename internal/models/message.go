package models

import "gorm.io/gorm"

// Message is one durable chat message between two users.
// The embedded gorm.Model provides ID, CreatedAt, UpdatedAt, and DeletedAt,
// which serve as the message ID and timestamps. Messages are append-only:
// there is no update or delete path once a record is created.
type Message struct {
	gorm.Model

	// SenderID is the user ID of the message author.
	SenderID string `gorm:"type:text;not null;index:idx_participants" json:"sender"`
	// ReceiverID is the user ID of the addressed participant.
	ReceiverID string `gorm:"type:text;not null;index:idx_participants" json:"receiver"`
	// Text is the message body. Must be non-empty.
	Text string `gorm:"type:text;not null" json:"text"`
}
