// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the outcome lines printed by the message board tools.
//
// Every command prints exactly one of these lines (listings print one line
// per item instead). Scripts built around the tools match on the exact
// wording, so keep it stable.
package app

// Outcomes of the users tool.
const (
	MsgInvalidUsername     = "Username must be between 1 and 255 characters"
	MsgPasswordTooShort    = "Password must be at least 8 characters long"
	MsgUserAlreadyExists   = "User already exists"
	MsgUserCreated         = "User created successfully"
	MsgUserDoesNotExist    = "User does not exist"
	MsgWrongPassword       = "Wrong password"
	MsgNewPasswordTooShort = "New password must be at least 8 characters long"
	MsgPasswordUpdated     = "Password updated successfully"
	MsgUserDeleted         = "User deleted successfully"
	MsgNoUsersFound        = "No users found"
)

// Outcomes of the messages tool.
const (
	MsgSenderDoesNotExist    = "Sender user does not exist"
	MsgPasswordIncorrect     = "Password incorrect"
	MsgRecipientDoesNotExist = "Recipient user does not exist"
	MsgMessageTooLong        = "Message too long"
	MsgMessageEmpty          = "Message cannot be empty"
	MsgMessageSent           = "Message sent successfully"
	MsgNoMessagesFound       = "No messages found"

	// MsgReceivedMessageFormat renders one received message: sender, date
	// (formatted with [DateLayout]) and text.
	MsgReceivedMessageFormat = "From: %s Date: %s Message: %s"

	// DateLayout is the time layout of the message creation date.
	DateLayout = "2006-01-02 15:04:05"
)

// Outcomes of the createdb tool.
const (
	MsgDatabaseCreated       = "Database created"
	MsgDatabaseAlreadyExists = "Database already exists"
	MsgTablesCreated         = "Tables created"
	MsgTablesUpToDate        = "Tables already up to date"
)

// Failures reported by every tool before exiting with a non-zero status.
const (
	MsgConnectionFailed = "Database connection failed"
	MsgDatabaseError    = "Database error"
	MsgConfigError      = "Configuration error"
)
