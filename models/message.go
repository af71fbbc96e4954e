// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Message represents a row of the "messages" table: a short text sent by one
// user to another.
type Message struct {
	id ID

	// FromID is the id of the sender.
	FromID int64

	// ToID is the id of the recipient.
	ToID int64

	// Text is the message body. Its length is validated by callers before the
	// message is built.
	Text string

	// CreationDate is stamped by the repository on first save and stays zero
	// until then.
	CreationDate time.Time
}

// NewMessage builds a not yet persisted message.
func NewMessage(fromID, toID int64, text string) Message {
	return Message{
		FromID: fromID,
		ToID:   toID,
		Text:   text,
	}
}

// RestoreMessage rebuilds a message from a stored row.
func RestoreMessage(id, fromID, toID int64, text string, creationDate time.Time) Message {
	return Message{
		id:           NewID(id),
		FromID:       fromID,
		ToID:         toID,
		Text:         text,
		CreationDate: creationDate,
	}
}

// ID returns the storage identity of the message.
func (m Message) ID() ID {
	return m.id
}

// AssignID records the key generated by the database on insert.
func (m *Message) AssignID(id int64) {
	m.id = NewID(id)
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}

// ReceivedMessage is a message as shown to its recipient: the sender is
// resolved to a username.
type ReceivedMessage struct {
	Sender       string
	CreationDate time.Time
	Text         string
}
